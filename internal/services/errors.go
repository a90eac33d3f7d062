package services

import "errors"

// 校验类错误直接回给命令调用方，不算系统故障
var (
	ErrMemberNotFound   = errors.New("成员不存在")
	ErrInvalidAmount    = errors.New("数值必须为正")
	ErrInvalidBase      = errors.New("base 必须大于 0")
	ErrInvalidModifier  = errors.New("modifier 不能为负")
	ErrInvalidCooldown  = errors.New("冷却时间不能为负")
	ErrInvalidLevel     = errors.New("奖励等级必须不小于 1")
	ErrRewardNotFound   = errors.New("奖励不存在")
	ErrSettingsNotFound = errors.New("该 Guild 尚未初始化等级系统")
)

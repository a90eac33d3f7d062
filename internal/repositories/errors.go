package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound 查询的记录不存在
// 与存储故障严格区分：调用方可以对 ErrNotFound 做兜底（如首次见到即创建），
// 但绝不能把存储故障当作"不存在"处理
var ErrNotFound = errors.New("记录不存在")

// StorageError 底层存储故障，必须向上传播，禁止吞掉
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("存储操作 %s 失败: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// wrap 将 GORM 错误映射为仓储层错误
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return &StorageError{Op: op, Err: err}
}

package leveling

import "math"

// Curve 经验-等级曲线参数
// Base 为基数（必须大于 0，由设置层校验），Modifier 为增长系数（百分比，>= 0）
type Curve struct {
	Base     int
	Modifier int
}

// 经验值超过该值时使用平方根反推起点，避免从 0 开始逐级扫描
const seedThreshold = 1000

// Threshold 返回曲线级 n 的经验门槛
// n 为负返回 0；Modifier 为 0 时退化为每级固定消耗 Base
func (c Curve) Threshold(n int) int {
	if n < 0 {
		return 0
	}
	if c.Modifier == 0 {
		return c.Base * (n + 1)
	}
	if n == 0 {
		return c.Base
	}
	step := int(math.Round(float64(c.Base) * float64(c.Modifier) / 100 * float64(n)))
	return c.Base + step*n
}

// Level 返回经验值对应的等级（最小等级为 1）
// 等级定义为：最小的曲线级 i 满足 xp < Threshold(i)，等级 = i + 1
func (c Curve) Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	if c.Modifier == 0 {
		return xp/c.Base + 1
	}
	i := 0
	if xp > seedThreshold && xp > c.Base {
		// 平方根反推一个起点，再向上扫描确认
		i = int(math.Floor(math.Sqrt(float64((xp-c.Base)*100)/float64(c.Base*c.Modifier)))) - 2
		if i < 0 {
			i = 0
		}
		// 反推在系数很小时可能偏大，先回退到门槛以下，
		// 保证结果与从 0 开始扫描完全一致
		for i > 0 && xp < c.Threshold(i-1) {
			i--
		}
	}
	for {
		if xp < c.Threshold(i) {
			return i + 1
		}
		i++
	}
}

// XPForLevel 返回达到指定等级所需的最低经验值
// 等级 1 返回 0（初始即为 1 级）
func (c Curve) XPForLevel(level int) int {
	return c.Threshold(level - 2)
}

// Progress 返回经验值在当前等级内的进度：已获得 / 区间总量
func (c Curve) Progress(xp int) (gained, span int) {
	level := c.Level(xp)
	floor := c.XPForLevel(level)
	next := c.XPForLevel(level + 1)
	return xp - floor, next - floor
}

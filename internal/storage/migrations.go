package storage

import (
	"gorm.io/gorm"
)

// migration 一次只进的结构变更，Number 单调递增且不可复用
type migration struct {
	Number     int64
	Statements []string
}

// 迁移只允许追加，不允许修改已发布的条目
var migrations = []migration{
	{
		Number: 1,
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS guild_settings (
				guild_id BIGINT PRIMARY KEY,
				cooldown_minutes INT NOT NULL DEFAULT 1,
				base INT NOT NULL DEFAULT 50,
				modifier INT NOT NULL DEFAULT 5,
				reward_amount INT NOT NULL DEFAULT 5,
				user_channel_id BIGINT NOT NULL DEFAULT 0,
				log_channel_id BIGINT NOT NULL DEFAULT 0,
				created_at TIMESTAMPTZ,
				updated_at TIMESTAMPTZ
			)`,
		},
	},
	{
		Number: 2,
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS member_levels (
				guild_id BIGINT NOT NULL,
				user_id BIGINT NOT NULL,
				xp INT NOT NULL DEFAULT 0,
				timeout_at TIMESTAMPTZ NOT NULL,
				ignore_xp_gain BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMPTZ,
				updated_at TIMESTAMPTZ,
				PRIMARY KEY (guild_id, user_id)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_member_levels_rank ON member_levels (guild_id, xp DESC, user_id ASC)`,
		},
	},
	{
		Number: 3,
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS rewards (
				guild_id BIGINT NOT NULL,
				role_id BIGINT NOT NULL,
				level INT NOT NULL,
				created_at TIMESTAMPTZ,
				updated_at TIMESTAMPTZ,
				PRIMARY KEY (guild_id, role_id)
			)`,
		},
	},
	{
		Number: 4,
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS ignored_channels (
				guild_id BIGINT NOT NULL,
				channel_id BIGINT NOT NULL,
				created_at TIMESTAMPTZ,
				PRIMARY KEY (guild_id, channel_id)
			)`,
			`CREATE TABLE IF NOT EXISTS ignored_roles (
				guild_id BIGINT NOT NULL,
				role_id BIGINT NOT NULL,
				created_at TIMESTAMPTZ,
				PRIMARY KEY (guild_id, role_id)
			)`,
		},
	},
}

// RunMigrations 按编号顺序应用未执行过的迁移
// 每个迁移在单独事务中执行并写入 applied_migrations 台账，
// 对已迁移的库重复执行是空操作
func RunMigrations(db *gorm.DB) error {
	if err := db.Exec(`CREATE TABLE IF NOT EXISTS applied_migrations (number BIGINT PRIMARY KEY)`).Error; err != nil {
		return err
	}

	var last int64
	if err := db.Raw(`SELECT COALESCE(MAX(number), 0) FROM applied_migrations`).Scan(&last).Error; err != nil {
		return err
	}

	for _, m := range migrations {
		if m.Number <= last {
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			for _, stmt := range m.Statements {
				if err := tx.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return tx.Exec(`INSERT INTO applied_migrations (number) VALUES (?)`, m.Number).Error
		})
		if err != nil {
			return err
		}
	}
	return nil
}

package domain

import "context"

type BloomRepository interface {
	// Add 将 ID 加入过滤器
	Add(ctx context.Context, id string) error

	// Exists 检查 ID 是否可能存在
	// 返回 true: 可能存在 (需要进一步查 DB)
	// 返回 false: 绝对不存在 (直接返回 404)
	// 过滤器尚未初始化完成时总是返回 true
	Exists(ctx context.Context, id string) (bool, error)

	// BulkAdd 用于大量添加 ID
	BulkAdd(ctx context.Context, ids []string) error

	// MarkReady 在全量 ID 写入后调用，之后 Exists 才会给出否定结果
	MarkReady(ctx context.Context) error

	// MarkNotReady 撤销就绪标记，Exists 重新对所有 ID 返回 true，直到下次 MarkReady
	MarkNotReady(ctx context.Context) error
}

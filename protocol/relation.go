package protocol

// Relation 表示类之间的关系
type Relation struct {
	Type        RelationType `json:"type"`              // 关系类型
	SourceClass string       `json:"sourceClass"`       // 源类限定名
	SourceField string       `json:"sourceField"`       // 源字段名(从属关系时为外键列)
	TargetClass string       `json:"targetClass"`       // 目标类限定名
	TargetField string       `json:"targetField"`       // 目标字段名
	Through     *Through     `json:"through,omitempty"` // 多对多配置
	Reverse     *Relation    `json:"-"`                 // 反向关系引用,不参与序列化避免环
}

// Through 表示多对多关系中的中间表配置
type Through struct {
	Table     string `json:"table"`     // 中间表名称
	SourceKey string `json:"sourceKey"` // 中间表中指向源表的外键
	TargetKey string `json:"targetKey"` // 中间表中指向目标表的外键
}

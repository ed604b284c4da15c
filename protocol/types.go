package protocol

// RelationType 表示关系类型
type RelationType string

// 关系类型常量
const (
	BELONGS_TO   RelationType = "belongs_to"   // 从属关系(外键在本方)
	HAS_MANY     RelationType = "has_many"     // 一对多关系(外键在对方)
	MANY_TO_MANY RelationType = "many_to_many" // 多对多关系(经由中间表)
)

// Parse 从字符串转换为关系类型
func (my RelationType) Parse(kind string) RelationType {
	switch kind {
	case string(HAS_MANY):
		return HAS_MANY
	case string(MANY_TO_MANY):
		return MANY_TO_MANY
	default:
		return BELONGS_TO // 默认为从属关系
	}
}

// Reverse 返回反向关系类型
func (my RelationType) Reverse() RelationType {
	switch my {
	case BELONGS_TO:
		return HAS_MANY
	case HAS_MANY:
		return BELONGS_TO
	default:
		return MANY_TO_MANY // 多对多的反向仍是多对多
	}
}

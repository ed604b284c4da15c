package protocol

import "strings"

// RefSeparator 限定名中命名空间与类名之间的分隔符
const RefSeparator = "."

// ClassRef 表示一个带命名空间的类引用
// 用结构化的(命名空间,类名)二元组代替字符串拼接,查找和比较都不再依赖分隔符
type ClassRef struct {
	Namespace string `json:"namespace,omitempty"` // 命名空间,可为空
	Name      string `json:"name"`                // 类名(本地名称)
}

// ParseRef 解析限定名,最后一段为类名,其余部分为命名空间
func ParseRef(qualified string) ClassRef {
	if i := strings.LastIndex(qualified, RefSeparator); i >= 0 {
		return ClassRef{Namespace: qualified[:i], Name: qualified[i+1:]}
	}
	return ClassRef{Name: qualified}
}

// Qualified 渲染为限定名,命名空间为空时只返回类名
func (my ClassRef) Qualified() string {
	if my.Namespace == "" {
		return my.Name
	}
	return my.Namespace + RefSeparator + my.Name
}

// Root 返回命名空间的第一段,没有命名空间时返回空串
func (my ClassRef) Root() string {
	if i := strings.Index(my.Namespace, RefSeparator); i >= 0 {
		return my.Namespace[:i]
	}
	return my.Namespace
}

// IsZero 判断引用是否为空
func (my ClassRef) IsZero() bool {
	return my.Name == "" && my.Namespace == ""
}

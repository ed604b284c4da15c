package renderer

import (
	"strings"
	"sync"
)

// StringBuilder 高性能字符串构建器
type StringBuilder struct {
	builder strings.Builder
}

// Reset 重置构建器
func (sb *StringBuilder) Reset() {
	sb.builder.Reset()
}

// Grow 预分配容量
func (sb *StringBuilder) Grow(n int) {
	sb.builder.Grow(n)
}

// WriteString 写入字符串
func (sb *StringBuilder) WriteString(s string) {
	sb.builder.WriteString(s)
}

// WriteByte 写入字节
func (sb *StringBuilder) WriteByte(b byte) {
	sb.builder.WriteByte(b)
}

// WriteIndent 写入指定数量的制表符
func (sb *StringBuilder) WriteIndent(n int) {
	for i := 0; i < n; i++ {
		sb.builder.WriteByte('\t')
	}
}

// String 获取最终字符串
func (sb *StringBuilder) String() string {
	return sb.builder.String()
}

// Builder 字段构建器
type Builder struct {
	sb StringBuilder
}

// NewBuilder 创建新的字段构建器
func NewBuilder() *Builder {
	return &Builder{}
}

// Build 构建字段定义字符串
func (b *Builder) Build(f *Field) string {
	// 预估容量减少内存分配
	b.sb.Reset()
	b.sb.Grow(estimateSize(f))

	// 添加缩进
	b.sb.WriteIndent(f.Indent)

	// 字段名和类型
	b.sb.WriteString(f.Name)
	b.sb.WriteByte(' ')
	b.sb.WriteString(f.Type)

	// 结构体标签
	if len(f.Tags) > 0 {
		b.sb.WriteString(" `")
		for i, tag := range f.Tags {
			if i > 0 {
				b.sb.WriteByte(' ')
			}

			b.sb.WriteString(tag.Key)
			b.sb.WriteString(":\"")
			b.sb.WriteString(tag.Value)
			b.sb.WriteByte('"')
		}
		b.sb.WriteByte('`')
	}

	// 行尾注释
	if f.Comment != "" {
		b.sb.WriteString(" // ")
		b.sb.WriteString(f.Comment)
	}

	return b.sb.String()
}

// 预估字段字符串长度
func estimateSize(f *Field) int {
	size := f.Indent + len(f.Name) + len(f.Type) + 1 // 基础大小

	if len(f.Tags) > 0 {
		size += 3 // 添加空格和反引号
		for _, tag := range f.Tags {
			size += len(tag.Key) + len(tag.Value) + 4 // 键、值和分隔符
		}
	}

	if f.Comment != "" {
		size += len(f.Comment) + 4 // 添加注释和分隔符
	}

	return size
}

// 全局字段构建器
var globalBuilder = NewBuilder()
var builderMutex sync.Mutex

// BuildField 使用全局构建器生成字段字符串
func BuildField(f *Field) string {
	builderMutex.Lock()
	defer builderMutex.Unlock()
	return globalBuilder.Build(f)
}

// MakeField 创建、构建并释放字段的便捷方法
func MakeField(name string, typeName string, options ...Option) string {
	f := New(name, typeName, options...)
	str := BuildField(f)
	Release(f)
	return str
}

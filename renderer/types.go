package renderer

import "strings"

// Tag 表示一个结构体标签键值对
type Tag struct {
	Key   string
	Value string
}

// Field 表示待渲染的Go结构体字段
type Field struct {
	Name    string
	Type    string
	Tags    []Tag
	Comment string
	Indent  int
}

// Option 配置字段的函数选项
type Option func(*Field)

// WithTag 追加一个结构体标签
func WithTag(key string, value string) Option {
	return func(f *Field) {
		f.Tags = append(f.Tags, Tag{Key: key, Value: value})
	}
}

// WithGorm 将各片段用分号连接为gorm标签
func WithGorm(parts ...string) Option {
	return func(f *Field) {
		f.Tags = append(f.Tags, Tag{Key: "gorm", Value: strings.Join(parts, ";")})
	}
}

// WithJson 添加json标签
func WithJson(name string) Option {
	return func(f *Field) {
		f.Tags = append(f.Tags, Tag{Key: "json", Value: name})
	}
}

// WithComment 添加行尾注释
func WithComment(comment string) Option {
	return func(f *Field) {
		f.Comment = comment
	}
}

// WithIndent 设置缩进级别
func WithIndent(tabs int) Option {
	return func(f *Field) {
		f.Indent = tabs
	}
}

// New 创建新字段
func New(name string, typeName string, options ...Option) *Field {
	f := getFromPool()
	f.Name = name
	f.Type = typeName

	for _, opt := range options {
		opt(f)
	}

	return f
}

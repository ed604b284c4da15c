package orm

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ichaly/ideabase/orm/protocol"
	"github.com/ichaly/ideabase/orm/renderer"

	"github.com/iancoleman/strcase"
	"github.com/ichaly/ideabase/utl"
	"github.com/rs/zerolog/log"
)

// 描述常量
const (
	DESC_MODELS_TITLE = "IdeaBase ORM 连接表模型"
	DESC_MANIFEST     = "返回全部连接表模型，可直接交给AutoMigrate迁移"
)

// 数据库类型到Go类型的映射
var goTypes = map[string]string{
	TYPE_INTEGER: "int64",
	"bigint":     "int64",
	"smallint":   "int64",
	"serial":     "int64",
	"bigserial":  "int64",
	"numeric":    "float64",
	"decimal":    "float64",
	"real":       "float64",
	"boolean":    "bool",
}

// goType 返回字段对应的Go类型
func goType(field *protocol.Field) string {
	if name, ok := goTypes[strings.ToLower(field.Type)]; ok {
		return name
	}
	if field.IsNumeric {
		return "int64"
	}
	return "string"
}

// Renderer 负责将目录中的连接表渲染为GORM模型源码
type Renderer struct {
	meta *Catalog
	sb   *strings.Builder
}

// NewRenderer 创建新的模型渲染器
func NewRenderer(meta *Catalog) *Renderer {
	return &Renderer{
		meta: meta,
		sb:   &strings.Builder{},
	}
}

// Generate 生成完整的模型源码
func (my *Renderer) Generate() (string, error) {
	// 初始化字符串构建器
	my.sb = &strings.Builder{}

	// 添加生成标记和包声明
	my.writeLine("// Code generated from join table definitions. DO NOT EDIT.")
	my.writeLine("// ", DESC_MODELS_TITLE)
	my.writeLine("// 版本: ", my.meta.Version)
	my.writeLine()
	my.writeLine("package ", my.meta.cfg.Metadata.Package)
	my.writeLine()

	// 定义渲染函数及对应的错误消息
	renderFuncs := []struct {
		name string
		fn   func() error
	}{
		{"连接表模型", my.renderModels},
		{"模型清单", my.renderManifest},
	}

	// 遍历执行所有渲染函数
	for _, rf := range renderFuncs {
		if err := rf.fn(); err != nil {
			return "", fmt.Errorf("渲染%s失败: %w", rf.name, err)
		}
	}

	// 保存到文件
	content := my.sb.String()
	if err := my.saveToFile(content); err != nil {
		return "", fmt.Errorf("保存模型文件失败: %w", err)
	}

	return content, nil
}

// writeLine 写入一行文本（自动添加换行符）
// 支持可变参数，避免字符串相加操作，提高性能
func (my *Renderer) writeLine(parts ...string) {
	my.write(parts...)
	my.write("\n")
}

// write 直接写入文本
// 支持可变参数，避免字符串相加操作，提高性能
func (my *Renderer) write(parts ...string) {
	for _, part := range parts {
		my.sb.WriteString(part)
	}
}

// saveToFile 将生成的模型源码保存到文件
func (my *Renderer) saveToFile(content string) error {
	filename := filepath.Join(my.meta.cfg.Root, "cfg", "models_gen.go")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("创建模型目录失败: %w", err)
	}
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return fmt.Errorf("写入模型文件失败: %w", err)
	}

	log.Info().Str("path", filename).Msg("模型文件已生成")
	return nil
}

// renderModels 渲染连接表模型定义
func (my *Renderer) renderModels() error {
	for _, className := range utl.SortKeys(my.meta.Nodes) {
		class := my.meta.Nodes[className]

		// 跳过别名键和普通实体，只渲染连接表
		if className != class.Name || !class.IsThrough {
			continue
		}

		if err := my.renderModel(class); err != nil {
			return err
		}
	}

	return nil
}

// renderModel 渲染单个连接表模型及其表名方法
func (my *Renderer) renderModel(class *protocol.Class) error {
	name := strcase.ToCamel(class.Name)

	comment := class.Description
	if comment == "" {
		comment = "连接表" + class.Table + "的模型"
	}
	my.writeLine("// ", name, " ", comment)
	my.writeLine("type ", name, " struct {")

	// 主键列按声明顺序排在最前
	for _, pk := range class.PrimaryKeys {
		field, ok := class.Fields[pk]
		if !ok {
			return fmt.Errorf("连接表[%s]缺少主键列[%s]", class.Name, pk)
		}
		my.writeColumn(field)
	}

	// 其余物理列按名称排序
	for _, fieldName := range utl.SortKeys(class.Fields) {
		field := class.Fields[fieldName]
		if fieldName != field.Name || field.Virtual || field.IsPrimary {
			continue
		}
		my.writeColumn(field)
	}

	// 归属关系生成预加载字段
	for _, fieldName := range utl.SortKeys(class.Fields) {
		field := class.Fields[fieldName]
		if fieldName != field.Name || field.Relation == nil || field.Relation.Type != protocol.BELONGS_TO {
			continue
		}
		my.writeRelation(field)
	}

	my.writeLine("}")
	my.writeLine()

	// TableName方法锁定实际表名
	my.writeLine("// TableName 指定", name, "对应的表名")
	my.writeLine("func (", name, ") TableName() string {")
	my.writeLine("\treturn \"", class.Table, "\"")
	my.writeLine("}")
	my.writeLine()

	return nil
}

// writeColumn 渲染数据库列字段
func (my *Renderer) writeColumn(field *protocol.Field) {
	parts := []string{"column:" + field.Column}
	if field.Type != "" {
		parts = append(parts, "type:"+field.Type)
	}
	if field.IsPrimary {
		parts = append(parts, "primaryKey")
	}
	if !field.Nullable {
		parts = append(parts, "not null")
	}

	options := []renderer.Option{
		renderer.WithGorm(parts...),
		renderer.WithJson(field.Name),
	}
	if field.Description != "" {
		options = append(options, renderer.WithComment(field.Description))
	}

	my.writeField(strcase.ToCamel(field.Name), goType(field), options...)
}

// writeRelation 渲染归属关系的预加载字段
func (my *Renderer) writeRelation(field *protocol.Field) {
	target := protocol.ParseRef(field.Relation.TargetClass)
	typeName := strcase.ToCamel(target.Name)

	parts := []string{"foreignKey:" + strcase.ToCamel(field.Relation.SourceField)}
	if field.Relation.TargetField != "" {
		parts = append(parts, "references:"+strcase.ToCamel(field.Relation.TargetField))
	}

	my.writeField(
		strcase.ToCamel(field.Name),
		"*"+typeName,
		renderer.WithGorm(parts...),
		renderer.WithJson(field.Name),
		renderer.WithComment("关联的"+typeName+"对象"),
	)
}

// renderManifest 渲染模型清单方法
func (my *Renderer) renderManifest() error {
	my.writeLine("// JoinTables ", DESC_MANIFEST)
	my.writeLine("func JoinTables() []interface{} {")
	my.writeLine("\treturn []interface{}{")

	for _, className := range utl.SortKeys(my.meta.Nodes) {
		class := my.meta.Nodes[className]
		if className != class.Name || !class.IsThrough {
			continue
		}
		my.writeLine("\t\t&", strcase.ToCamel(class.Name), "{},")
	}

	my.writeLine("\t}")
	my.writeLine("}")

	return nil
}

// writeField 使用子包渲染结构体字段
func (my *Renderer) writeField(name string, typeName string, options ...renderer.Option) {
	fieldStr := renderer.MakeField(name, typeName, options...)
	my.writeLine(fieldStr)
}

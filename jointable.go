package orm

import (
	"errors"

	"github.com/iancoleman/strcase"
	"github.com/ichaly/ideabase/orm/protocol"
)

func init() {
	strcase.ConfigureAcronym("ID", "Id")
}

// ErrUnresolvedMethod 表示访问器名处于未解析状态
// 转换能力缺失且未显式提供访问器名时,依赖该名字的声明会以此错误终止,
// 而不会用错误的名字静默声明
var ErrUnresolvedMethod = errors.New("访问器名未解析")

// Join 连接表配置,字符串零值表示未显式指定
type Join struct {
	LeftClass         string `json:"leftClass"`                   // 左侧类名,必填
	RightClass        string `json:"rightClass"`                  // 右侧类名,必填
	LeftMethod        string `json:"leftMethod,omitempty"`        // 左侧访问器名
	RightMethod       string `json:"rightMethod,omitempty"`       // 右侧访问器名
	LeftMethodPlural  string `json:"leftMethodPlural,omitempty"`  // 左侧复数访问器名
	RightMethodPlural string `json:"rightMethodPlural,omitempty"` // 右侧复数访问器名
	SelfMethod        string `json:"selfMethod,omitempty"`        // 父类回指连接表的访问器名
	SelfMethodPlural  string `json:"selfMethodPlural,omitempty"`  // 父类回指连接表的复数访问器名
	Namespace         string `json:"namespace,omitempty"`         // 父类所在命名空间
}

// Linker 连接表声明器
// 把连接表配置补全后翻译成宿主Schema上的一组声明
type Linker struct {
	convert  Converter         // 驼峰转蛇形能力,可缺省
	resolver protocol.Resolver // 父类解析器,反向声明时必需
}

// LinkerOption 用于自定义Linker
type LinkerOption func(*Linker)

// WithConverter 注入自定义的类名转换能力
func WithConverter(convert Converter) LinkerOption {
	return func(my *Linker) {
		my.convert = convert
	}
}

// WithoutConverter 关闭类名转换能力,进入降级模式
// 降级模式下未显式提供的访问器名保持未解析状态
func WithoutConverter() LinkerOption {
	return func(my *Linker) {
		my.convert = nil
	}
}

// WithResolver 注入父类解析器
func WithResolver(resolver protocol.Resolver) LinkerOption {
	return func(my *Linker) {
		my.resolver = resolver
	}
}

// NewLinker 创建连接表声明器,默认携带蛇形转换能力
func NewLinker(opts ...LinkerOption) *Linker {
	my := &Linker{convert: SnakeConverter}
	for _, opt := range opts {
		opt(my)
	}
	return my
}

// DeclareJoinTable 一站式声明连接表
// 按固定顺序执行: 表名->外键列->从属关系->复合主键,返回补全后的配置
// 反向的一对多与多对多声明不在默认编排内,需要显式调用
func (my *Linker) DeclareJoinTable(s protocol.Schema, self protocol.ClassRef, join Join) (Join, error) {
	join, err := my.Complete(self, join)
	if err != nil {
		return join, err
	}
	if err = my.SetTable(s, join); err != nil {
		return join, err
	}
	if err = my.AddJoinColumns(s, join); err != nil {
		return join, err
	}
	if err = my.GenerateRelationships(s, self, join); err != nil {
		return join, err
	}
	if err = my.SetPrimaryKeys(s, join); err != nil {
		return join, err
	}
	return join, nil
}

package orm

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
)

// Converter 驼峰类名转蛇形访问器名的能力
// 以函数注入代替运行时探测,构造时注入一次,整个生命周期内固定
type Converter func(string) string

// SnakeConverter 默认转换实现,"FooBar"转为"foo_bar"
var SnakeConverter Converter = strcase.ToSnake

// PluralizePhrase 对下划线连接的短语做英文复数化
// 按分隔符拆分后只复数化最后一个单词再拼回,
// 整串复数化会把"city_hall"误处理,逐词处理得到"city_halls"
func PluralizePhrase(phrase string) string {
	if phrase == "" {
		return phrase
	}
	words := strings.Split(phrase, SEPARATOR_WORD)
	last := len(words) - 1
	words[last] = inflection.Plural(words[last])
	return strings.Join(words, SEPARATOR_WORD)
}

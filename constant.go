package orm

import (
	jsoniter "github.com/json-iterator/go"
)

// 全局JSON处理实例，使用jsoniter替代标准库
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// 命名常量
const (
	// 连接表名中左右类名的分隔符
	SEPARATOR_TABLE = "_"

	// 短语中单词的分隔符
	SEPARATOR_WORD = "_"

	// 外键列名后缀
	SUFFIX_ID = "_id"
)

// 列数据类型
const (
	TYPE_INTEGER = "integer"
)

package renderer

import (
	"sync"
)

var fieldPool = sync.Pool{
	New: func() interface{} {
		return &Field{
			Indent: 1,
			Tags:   make([]Tag, 0, 4),
		}
	},
}

// getFromPool 从对象池获取Field
func getFromPool() *Field {
	return fieldPool.Get().(*Field)
}

// Release 将Field归还对象池
func Release(f *Field) {
	// 重置字段状态
	f.Name = ""
	f.Type = ""
	f.Comment = ""
	f.Indent = 1
	f.Tags = f.Tags[:0]

	fieldPool.Put(f)
}

package orm

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ichaly/ideabase/log"
	"github.com/ichaly/ideabase/orm/protocol"
)

// MarshalJSON 自定义JSON序列化
func (my *Catalog) MarshalJSON() ([]byte, error) {
	// 仅导出key和类名相同的节点
	nodes := make(map[string]*protocol.Class)
	for key, class := range my.Nodes {
		if key == class.Name {
			// 直接使用原始对象，减少字段复制
			nodes[key] = class
		}
	}
	return json.Marshal(Catalog{
		Nodes:   nodes,
		Version: my.Version,
	})
}

// saveToFile 保存目录到文件
func (my *Catalog) saveToFile(filePath string) error {
	log.Info().Str("file", filePath).Msg("开始保存目录到文件")

	// 确保目录存在
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Error().Err(err).Str("dir", dir).Msg("创建目录失败")
		return fmt.Errorf("创建目录失败: %w", err)
	}

	// 使用自定义序列化为JSON
	data, err := json.MarshalIndent(my, "", "  ")
	if err != nil {
		log.Error().Err(err).Str("file", filePath).Msg("序列化目录失败")
		return fmt.Errorf("序列化目录失败: %w", err)
	}

	// 写入文件
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		log.Error().Err(err).Str("file", filePath).Msg("写入目录文件失败")
		return fmt.Errorf("写入目录文件失败: %w", err)
	}

	log.Info().Int("classes", len(my.Nodes)).Msg("保存目录到文件完成")
	return nil
}

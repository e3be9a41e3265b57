//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// mobile/data/widget.yaml 是根目录 data/widget.yaml 的副本，
// 修改配置后需同步（make prepare-mobile）。
package mobile

import "embed"

//go:embed data/widget.yaml
var dataFS embed.FS

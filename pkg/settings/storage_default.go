//go:build !android

package settings

// EnsureStorageDir 非 Android 平台的空实现
// gdata 在桌面平台上会自动创建存储目录
func EnsureStorageDir() error {
	return nil
}

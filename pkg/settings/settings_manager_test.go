package settings

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestStore 在临时 HOME 下打开 gdata 存储
func openTestStore(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.WindowWidth != 480 {
		t.Errorf("WindowWidth: got %d, want 480", settings.WindowWidth)
	}
	if settings.WindowHeight != 800 {
		t.Errorf("WindowHeight: got %d, want 800", settings.WindowHeight)
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	if sm.GetSettings().WindowWidth != 480 {
		t.Errorf("Degraded mode WindowWidth: got %d, want 480", sm.GetSettings().WindowWidth)
	}

	// 降级模式下保存不报错
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode: %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	manager := openTestStore(t, "test_viewer_settings")

	sm1, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetFullscreen(true)
	sm1.SetWindowSize(600, 900)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if settings.WindowWidth != 600 || settings.WindowHeight != 900 {
		t.Errorf("Loaded window size: got %dx%d, want 600x900", settings.WindowWidth, settings.WindowHeight)
	}
}

// TestSettingsLoadCorrupted 测试存储内容损坏时回退到默认设置
func TestSettingsLoadCorrupted(t *testing.T) {
	manager := openTestStore(t, "test_viewer_settings_corrupted")

	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("windowWidth: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if sm.GetSettings().WindowWidth != 480 {
		t.Errorf("WindowWidth after corrupted load: got %d, want 480", sm.GetSettings().WindowWidth)
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() of corrupted data: expected error")
	}
}

// TestSetWindowSizeClamp 测试窗口尺寸的范围限制
func TestSetWindowSizeClamp(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"normal", 640, 480, 640, 480},
		{"too small", 10, 0, minWindowSize, minWindowSize},
		{"too large", 100000, 9000, maxWindowSize, maxWindowSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm.SetWindowSize(tt.width, tt.height)
			s := sm.GetSettings()
			if s.WindowWidth != tt.wantW || s.WindowHeight != tt.wantH {
				t.Errorf("SetWindowSize(%d, %d) = %dx%d, want %dx%d",
					tt.width, tt.height, s.WindowWidth, s.WindowHeight, tt.wantW, tt.wantH)
			}
		})
	}
}

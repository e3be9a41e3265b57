package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func reset() {
	dataFS = nil
	initialized = false
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	reset()
	defer reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
	if IsInitialized() {
		t.Error("Expected Init(nil) to leave the package uninitialized")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	reset()

	_, err := ReadFile("data/widget.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Unexpected error: %v", err)
	}
}

// TestReadFile 测试读取嵌入文件及路径规范化
func TestReadFile(t *testing.T) {
	reset()
	defer reset()

	Init(fstest.MapFS{
		"data/widget.yaml": &fstest.MapFile{Data: []byte("parts: 5\n")},
	})

	data, err := ReadFile("./data/widget.yaml")
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "parts: 5\n" {
		t.Errorf("ReadFile() = %q", data)
	}

	if !Exists("data/widget.yaml") {
		t.Error("Exists() = false for embedded file")
	}
	if Exists("data/missing.yaml") {
		t.Error("Exists() = true for missing file")
	}
}

// TestUnknownPrefix 测试非 data/ 前缀的路径
func TestUnknownPrefix(t *testing.T) {
	reset()
	defer reset()

	Init(fstest.MapFS{})

	if _, err := ReadFile("assets/widget.yaml"); err == nil {
		t.Error("Expected error for unknown prefix")
	}
	if _, err := Open("widget.yaml"); err == nil {
		t.Error("Expected error for unknown prefix")
	}
}

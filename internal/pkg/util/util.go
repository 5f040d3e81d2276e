package util

import (
	"io"
	"os"
	"path/filepath"
)

// GetCurrentAbPathByExecutable 获取当前执行程序所在的绝对路径
func GetCurrentAbPathByExecutable() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	res, _ := filepath.EvalSymlinks(filepath.Dir(exePath))
	return res, nil
}

// WriteFileAtomic 先写入同目录下的临时文件，成功后再重命名为目标文件。
// 返回的错误操作名可用于区分失败的阶段。
func WriteFileAtomic(fPath string, write func(w io.Writer) error) (op string, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(fPath), "."+filepath.Base(fPath)+".*.tmp")
	if err != nil {
		return "create", err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if err = write(tmp); err != nil {
		_ = tmp.Close()
		return "write", err
	}
	if err = tmp.Close(); err != nil {
		return "write", err
	}
	if err = os.Chmod(tmpName, 0644); err != nil {
		return "chmod", err
	}
	if err = os.Rename(tmpName, fPath); err != nil {
		return "rename", err
	}
	return "", nil
}

//go:build windows

package process

import "syscall"

func newProcessGroupAttr() *syscall.SysProcAttr {
	return nil
}

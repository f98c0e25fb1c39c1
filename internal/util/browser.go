package util

import (
	"os/exec"
	"runtime"
)

// browserCommand 按平台返回打开 URL 的命令
func browserCommand(goos, url string) *exec.Cmd {
	switch goos {
	case "windows":
		// rundll32 比 cmd /c start 更稳定
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		return exec.Command("open", url)
	default:
		return exec.Command("xdg-open", url)
	}
}

// OpenBrowser 打开默认浏览器
func OpenBrowser(url string) error {
	return browserCommand(runtime.GOOS, url).Start()
}

// OpenBrowserWithFallback 主要方式失败时尝试备选方式
func OpenBrowserWithFallback(url string) error {
	err := OpenBrowser(url)
	if err == nil {
		return nil
	}

	switch runtime.GOOS {
	case "windows":
		return exec.Command("explorer", url).Start()
	case "linux":
		for _, browser := range []string{"google-chrome", "firefox", "chromium-browser", "sensible-browser"} {
			if err := exec.Command(browser, url).Start(); err == nil {
				return nil
			}
		}
	}

	return err
}

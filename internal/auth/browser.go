package auth

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/skratchdot/open-golang/open"
)

// OpenBrowser открывает URL в браузере по умолчанию. Сначала используется
// платформонезависимая библиотека, затем системные команды.
func OpenBrowser(url string) error {
	if err := open.Run(url); err == nil {
		return nil
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "linux":
		for _, browser := range []string{"xdg-open", "x-www-browser", "firefox", "chromium"} {
			if _, err := exec.LookPath(browser); err == nil {
				cmd = exec.Command(browser, url)
				break
			}
		}
		if cmd == nil {
			return fmt.Errorf("no suitable browser found")
		}
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start browser command: %w", err)
	}

	return nil
}

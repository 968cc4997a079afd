package main

import (
	"fmt"
	"os"
	"os/exec"
	"time"
)

// startApp запускает один вариант web-приложения с нужным окружением.
func startApp(variant, addr, mainAppURL string) (*exec.Cmd, error) {
	cmd := exec.Command("go", "run", "./cmd/webapp")
	cmd.Env = append(os.Environ(),
		"APP_VARIANT="+variant,
		"APP_ADDR="+addr,
		"API_URL=http://localhost:4000",
		"MAIN_APP_URL="+mainAppURL,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, cmd.Start()
}

func main() {
	fmt.Println("Запуск SSO-демо...")

	// запускаем auth API на фоне
	server := exec.Command("go", "run", "./cmd/server/main.go")
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr

	if err := server.Start(); err != nil {
		fmt.Printf("Ошибка запуска auth API: %v\n", err)
		return
	}

	time.Sleep(3 * time.Second)

	mainApp, err := startApp("main", ":5173", "http://localhost:5173")
	if err != nil {
		fmt.Printf("Ошибка запуска главного приложения: %v\n", err)
		return
	}

	externalApp, err := startApp("external", ":5174", "http://localhost:5173")
	if err != nil {
		fmt.Printf("Ошибка запуска внешнего приложения: %v\n", err)
		return
	}

	fmt.Println("auth API:              http://localhost:4000")
	fmt.Println("Главное приложение:    http://localhost:5173")
	fmt.Println("Внешнее приложение:    http://localhost:5174")
	fmt.Println("Учётные записи: admin@gmail.com/admin, serif@gmail.com/serif")
	fmt.Println("CLI-клиент: go build -o ssotodo ./cmd/ssotodo && ./ssotodo login --email admin@gmail.com")

	_ = mainApp.Wait()
	_ = externalApp.Wait()
	server.Wait()
}

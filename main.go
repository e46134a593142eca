package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"extractor/config"
	"extractor/database"
	"extractor/logger"
	"extractor/web"
	"extractor/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			if err := database.CloseDB(); err != nil {
				logger.Warning("close db err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

func resetSetting() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	settingService := service.SettingService{}
	err = settingService.ResetSettings()
	if err != nil {
		fmt.Println("reset setting failed:", err)
	} else {
		fmt.Println("reset setting success")
	}
}

func showSetting() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	settingService := service.SettingService{}
	port, err := settingService.GetPort()
	if err != nil {
		fmt.Println("get current port failed, error info:", err)
	}
	userService := service.UserService{}
	userModel, err := userService.GetFirstUser()
	if err != nil {
		fmt.Println("no account created yet, visit /setup/ to create one")
		fmt.Println("port:", port)
		return
	}
	fmt.Println("current panel settings as follows:")
	fmt.Println("email:", userModel.Email)
	fmt.Println("role:", userModel.Role)
	fmt.Println("port:", port)
}

func updateSetting(port int, email string, password string, twoFactorToken string, twoFactorEnable *bool) {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	settingService := service.SettingService{}

	if port > 0 {
		err := settingService.SetPort(port)
		if err != nil {
			fmt.Println("set port failed:", err)
		} else {
			fmt.Printf("set port %v success\n", port)
		}
	}
	if email != "" || password != "" {
		userService := service.UserService{}
		err := userService.UpdateFirstUser(email, password)
		if err != nil {
			fmt.Println("set email and password failed:", err)
		} else {
			fmt.Println("set email and password success")
		}
	}
	if twoFactorToken != "" {
		err := settingService.SetTwoFactorToken(twoFactorToken)
		if err != nil {
			fmt.Println("set two-factor token failed:", err)
		} else {
			fmt.Println("set two-factor token success")
		}
	}
	if twoFactorEnable != nil {
		err := settingService.SetTwoFactorEnable(*twoFactorEnable)
		if err != nil {
			fmt.Println("set two-factor enable failed:", err)
		} else {
			fmt.Printf("set two-factor enable %v success\n", *twoFactorEnable)
		}
	}
}

func main() {
	// optional .env for deployments without systemd environment files
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use:   "extractor",
		Short: "Extractor asset panel",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var settingCmd = &cobra.Command{
		Use:   "setting",
		Short: "Set settings",
	}

	var resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Reset all settings",
		Run: func(cmd *cobra.Command, args []string) {
			resetSetting()
		},
	}

	var showCmd = &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		Run: func(cmd *cobra.Command, args []string) {
			showSetting()
		},
	}

	var updateCmd = &cobra.Command{
		Use:   "update",
		Short: "Update settings",
		Run: func(cmd *cobra.Command, args []string) {
			port, _ := cmd.Flags().GetInt("port")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			twoFactorToken, _ := cmd.Flags().GetString("two-factor-token")
			var twoFactorEnable *bool
			if cmd.Flags().Changed("two-factor-enable") {
				value, _ := cmd.Flags().GetBool("two-factor-enable")
				twoFactorEnable = &value
			}
			updateSetting(port, email, password, twoFactorToken, twoFactorEnable)
		},
	}

	updateCmd.Flags().Int("port", 0, "set panel port")
	updateCmd.Flags().String("email", "", "set login email")
	updateCmd.Flags().String("password", "", "set login password")
	updateCmd.Flags().String("two-factor-token", "", "set the TOTP secret for two-factor login")
	updateCmd.Flags().Bool("two-factor-enable", false, "enable or disable two-factor login")

	settingCmd.AddCommand(resetCmd, showCmd, updateCmd)
	rootCmd.AddCommand(runCmd, settingCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

package cmds

import (
	"errors"
	"fmt"

	"github.com/anilwee/epgLK/internal/app/router"
	"github.com/spf13/cobra"
)

var port int

func NewServeCLI() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "启动HTTP服务，按请求实时过滤并返回EPG。",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port <= 0 || port > 65535 {
				return errors.New("invalid port")
			}

			// 校验配置文件
			if err := conf.Validate(); err != nil {
				return err
			}

			// 创建并启动HTTP服务
			r := router.NewEngine(conf, newEPGClient())
			return r.Run(fmt.Sprintf(":%d", port))
		},
	}

	serveCmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP服务的监听端口。")

	return serveCmd
}

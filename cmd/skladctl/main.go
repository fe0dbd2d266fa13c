package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skladctl",
	Short: "skladctl — инструмент управления складом",
	Long:  "skladctl работает с API склада: просмотр, создание, изменение и удаление товаров.",
}

func init() {
	rootCmd.PersistentFlags().String("api", "", "адрес API (по умолчанию $SKLAD_API_URL или http://localhost:3000)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
}

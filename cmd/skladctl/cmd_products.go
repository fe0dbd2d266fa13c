package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kruglovma/sklad/internal/client"
	"github.com/kruglovma/sklad/internal/core/domain"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("некорректный ID товара: %q", arg)
	}
	return id, nil
}

// api builds the HTTP client from the --api flag or SKLAD_API_URL.
func api(cmd *cobra.Command) *client.Client {
	base, _ := cmd.Flags().GetString("api")
	if base == "" {
		base = os.Getenv("SKLAD_API_URL")
	}
	if base == "" {
		base = "http://localhost:3000"
	}
	return client.New(base)
}

func printProducts(products []client.Product) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tАртикул\tНазвание\tЦена\tКоличество")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%d\n", p.ID, p.Article, p.Name, p.Price, p.Quantity)
	}
	w.Flush()
}

func printFormErrors(form *client.ProductForm) {
	for _, field := range []string{domain.FieldArticle, domain.FieldName, domain.FieldPrice, domain.FieldQuantity} {
		if msg := form.FieldError(field); msg != "" {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
		}
	}
}

// setFormFlags copies the product flags that were actually passed into the form.
func setFormFlags(cmd *cobra.Command, form *client.ProductForm) {
	flags := map[string]string{
		"article":  domain.FieldArticle,
		"name":     domain.FieldName,
		"price":    domain.FieldPrice,
		"quantity": domain.FieldQuantity,
	}
	for flag, field := range flags {
		if cmd.Flags().Changed(flag) {
			value, _ := cmd.Flags().GetString(flag)
			form.SetField(field, value)
		}
	}
}

// submit validates the form, sends it and re-applies server-side violations.
func submit(cmd *cobra.Command, form *client.ProductForm, send func(client.ProductInput) (*client.Product, error)) error {
	if !form.Validate() {
		printFormErrors(form)
		return fmt.Errorf("товар не сохранён")
	}
	input, ok := form.Input()
	if !ok {
		printFormErrors(form)
		return fmt.Errorf("товар не сохранён")
	}
	product, err := send(input)
	if err != nil {
		if form.ApplyServerError(err) {
			printFormErrors(form)
			return fmt.Errorf("товар не сохранён")
		}
		return err
	}
	printProducts([]client.Product{*product})
	return nil
}

// skladctl list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать страницу списка товаров",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		limit, _ := cmd.Flags().GetInt("limit")

		browser := client.NewProductBrowser(api(cmd), limit)
		if err := browser.SetPage(cmd.Context(), page); err != nil {
			return err
		}
		printProducts(browser.Products())
		fmt.Printf("Страница %d из %d (всего товаров: %d)\n", browser.Page(), browser.TotalPages(), browser.Total())
		return nil
	},
}

// skladctl get <id>
var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Показать товар по ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		product, err := api(cmd).GetProduct(cmd.Context(), id)
		if err != nil {
			return err
		}
		printProducts([]client.Product{*product})
		return nil
	},
}

// skladctl create --article NB-100 --name Ноутбук --price 10.99 --quantity 5
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать товар",
	RunE: func(cmd *cobra.Command, args []string) error {
		form := client.NewProductForm()
		setFormFlags(cmd, form)
		c := api(cmd)
		return submit(cmd, form, func(input client.ProductInput) (*client.Product, error) {
			return c.CreateProduct(cmd.Context(), input)
		})
	},
}

// skladctl update <id> --price 12.50
var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Изменить товар (передаются только указанные поля)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		c := api(cmd)
		current, err := c.GetProduct(cmd.Context(), id)
		if err != nil {
			return err
		}
		form := client.FormFromProduct(current)
		setFormFlags(cmd, form)
		return submit(cmd, form, func(input client.ProductInput) (*client.Product, error) {
			return c.UpdateProduct(cmd.Context(), id, input)
		})
	},
}

// skladctl delete <id> [--yes]
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить товар",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Printf("Удалить товар с ID %d? [y/N]: ", id)
			answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.TrimSpace(strings.ToLower(answer)) != "y" {
				fmt.Println("Отменено")
				return nil
			}
		}
		if err := api(cmd).DeleteProduct(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Println("Товар удалён")
		return nil
	},
}

func init() {
	listCmd.Flags().Int("page", 1, "номер страницы")
	listCmd.Flags().Int("limit", 50, "размер страницы")

	for _, cmd := range []*cobra.Command{createCmd, updateCmd} {
		cmd.Flags().String("article", "", "артикул товара")
		cmd.Flags().String("name", "", "название товара")
		cmd.Flags().String("price", "", "цена товара")
		cmd.Flags().String("quantity", "", "количество на складе")
	}

	deleteCmd.Flags().Bool("yes", false, "удалить без подтверждения")
}

package main

import (
	"fmt"
	"strconv"

	"github.com/nikolayk812/tipkart/internal/catalog"
	"github.com/nikolayk812/tipkart/internal/domain"
	"github.com/spf13/cobra"
)

func newProductsCmd(a *app) *cobra.Command {
	var (
		q              catalog.Query
		sort, filterBy string
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List catalog products",
		Long: `Lists products, optionally narrowed to one category or a search term.

Sort orders: name, price-low, price-high, rating.
Filters: all, sale, high-rated.

Example:
  tipkart products --category "Home & Kitchen" --sort price-low --filter sale`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			src, release, err := a.openCatalog(ctx)
			if err != nil {
				return err
			}
			defer release()

			q.Sort = catalog.SortOrder(sort)
			q.Filter = catalog.Filter(filterBy)
			if q.Category != "" {
				q.Category = catalog.Slug(q.Category)
			}

			products, err := catalog.Browse(ctx, src, q)
			if err != nil {
				return fmt.Errorf("catalog.Browse: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(products) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("No products found"))
				return nil
			}

			fmt.Fprintln(out, renderProducts(products))
			fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("%d products", len(products))))
			return nil
		},
	}

	cmd.Flags().StringVar(&q.Category, "category", "", "Category name or slug")
	cmd.Flags().StringVar(&q.Search, "search", "", "Match product name or category")
	cmd.Flags().StringVar(&sort, "sort", string(catalog.SortName), "Sort order")
	cmd.Flags().StringVar(&filterBy, "filter", string(catalog.FilterAll), "Filter")

	return cmd
}

func newProductCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("product id[%s] is not a number", args[0])
			}

			src, release, err := a.openCatalog(ctx)
			if err != nil {
				return err
			}
			defer release()

			product, found, err := src.FindByID(ctx, domain.ProductID(id))
			if err != nil {
				return fmt.Errorf("src.FindByID: %w", err)
			}
			if !found {
				return fmt.Errorf("product[%d] not found", id)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderProduct(product))
			return nil
		},
	}
}

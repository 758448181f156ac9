package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/staffdesk/staffdesk/internal/types"
)

// listFlags are the pagination and filter flags of every list command
type listFlags struct {
	page      int
	limit     int
	orderBy   string
	ascending bool
	filters   []string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", types.DefaultPage, "Page number, starting at 1")
	cmd.Flags().IntVar(&f.limit, "limit", types.DefaultLimit, "Rows per page")
	cmd.Flags().StringVar(&f.orderBy, "order-by", types.DefaultOrderBy, "Order column")
	cmd.Flags().BoolVar(&f.ascending, "asc", false, "Order ascending")
	cmd.Flags().StringArrayVar(&f.filters, "filter", nil, "Filter as column:operator:value, repeatable")
}

// parse returns nil pagination unless a page or limit was asked for, so a
// bare list returns every row
func (f *listFlags) parse(cmd *cobra.Command) (*types.Pagination, []*types.Filter, error) {
	filters, err := types.ParseFilters(f.filters)
	if err != nil {
		return nil, nil, err
	}

	if !cmd.Flags().Changed("page") && !cmd.Flags().Changed("limit") {
		return nil, filters, nil
	}
	return &types.Pagination{
		Page:      f.page,
		Limit:     f.limit,
		OrderBy:   f.orderBy,
		Ascending: f.ascending,
	}, filters, nil
}

type (
	listFunc[T any]  func(ctx context.Context, pagination *types.Pagination, filters []*types.Filter) types.Response[[]T]
	argFunc[T any]   func(ctx context.Context, arg string) types.Response[T]
	noArgFunc[T any] func(ctx context.Context) types.Response[T]
)

func listCommand[T any](opts *rootOptions, pick func(*console) listFunc[T]) *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rows, optionally filtered and paginated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pagination, filters, err := lf.parse(cmd)
			if err != nil {
				return emit(cmd.OutOrStdout(), types.Fail[any](err, err.Error()))
			}
			return opts.run(cmd, func(ctx context.Context, c *console) error {
				return emit(cmd.OutOrStdout(), pick(c)(ctx, pagination, filters))
			})
		},
	}
	lf.register(cmd)
	return cmd
}

// argCommand runs a verb that takes a single positional argument. Extra
// arguments are joined, so search terms need no quoting.
func argCommand[T any](opts *rootOptions, use, short string, pick func(*console) argFunc[T]) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := strings.Join(args, " ")
			return opts.run(cmd, func(ctx context.Context, c *console) error {
				return emit(cmd.OutOrStdout(), pick(c)(ctx, arg))
			})
		},
	}
}

func noArgCommand[T any](opts *rootOptions, use, short string, pick func(*console) noArgFunc[T]) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, c *console) error {
				return emit(cmd.OutOrStdout(), pick(c)(ctx))
			})
		},
	}
}

func groupCmd(use, short string, aliases []string, children ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Aliases: aliases,
	}
	cmd.AddCommand(children...)
	return cmd
}

// Command symexpr exercises the expression engine from the shell: parse a
// postfix expression, evaluate it, differentiate, simplify, compose two
// expressions, or lay a tree out for rendering.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kettleby/symexpr"
)

var (
	flagVars    []string
	flagVerbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "symexpr",
	Short:         "Symbolic postfix expression calculator",
	Long:          "symexpr parses postfix expressions (digits, letters, + - * / ^) and evaluates, differentiates, simplifies, composes, and lays out the resulting trees.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(cmd.Flags()); err != nil {
			return err
		}
		return initLogger()
	},
}

func initConfig(flags *pflag.FlagSet) error {
	viper.SetEnvPrefix("SYMEXPR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	return viper.BindPFlags(flags)
}

func initLogger() error {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if viper.GetBool("verbose") {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	logger = l
	return nil
}

// bindings parses repeated --var x=3.14 definitions into a context.
func bindings() (*symexpr.Context, error) {
	ctx := symexpr.NewContext()
	for _, s := range flagVars {
		name, val, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("variable definitions must be name=value, not %q", s)
		}
		name = strings.TrimSpace(name)
		if len(name) != 1 || name[0] < 'a' || name[0] > 'z' {
			return nil, fmt.Errorf("variable name must be a single letter a-z, not %q", name)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("value for %s: %w", name, err)
		}
		ctx.Set(name[0], v)
	}
	return ctx, nil
}

func parseArg(arg string) (*symexpr.Expr, error) {
	a, err := symexpr.ParseString(arg)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", arg, err)
	}
	logger.Debug("parsed expression",
		zap.String("postfix", a.Postfix()),
		zap.String("infix", a.Infix()),
		zap.Strings("vars", a.Vars()))
	return a, nil
}

var evalCmd = &cobra.Command{
	Use:   "eval EXPR",
	Short: "Evaluate a postfix expression under --var bindings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseArg(args[0])
		if err != nil {
			return err
		}
		ctx, err := bindings()
		if err != nil {
			return err
		}
		v, err := a.Eval(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%g\n", v)
		return nil
	},
}

var infixCmd = &cobra.Command{
	Use:   "infix EXPR",
	Short: "Print the fully parenthesized infix form and its variables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseArg(args[0])
		if err != nil {
			return err
		}
		fmt.Println(a.Infix())
		if vars := a.Vars(); len(vars) > 0 {
			fmt.Println("vars:", strings.Join(vars, " "))
		}
		return nil
	},
}

var postfixCmd = &cobra.Command{
	Use:   "postfix EXPR",
	Short: "Print the canonical postfix form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseArg(args[0])
		if err != nil {
			return err
		}
		fmt.Println(a.Postfix())
		return nil
	},
}

var (
	deriveBy       string
	deriveSimplify bool
)

var deriveCmd = &cobra.Command{
	Use:   "derive EXPR",
	Short: "Differentiate with respect to --by",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(deriveBy) != 1 || deriveBy[0] < 'a' || deriveBy[0] > 'z' {
			return fmt.Errorf("--by must be a single letter a-z, not %q", deriveBy)
		}
		a, err := parseArg(args[0])
		if err != nil {
			return err
		}
		d, err := a.Derivative(deriveBy[0])
		if err != nil {
			return err
		}
		if deriveSimplify {
			d.Simplify()
		}
		fmt.Println(d.Infix())
		return nil
	},
}

var simplifyCmd = &cobra.Command{
	Use:   "simplify EXPR",
	Short: "Algebraically simplify an expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseArg(args[0])
		if err != nil {
			return err
		}
		a.Simplify()
		fmt.Println(a.Infix())
		return nil
	},
}

var composeOp string

var composeCmd = &cobra.Command{
	Use:   "compose E1 E2",
	Short: "Build (E1) op (E2) from two expressions",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(composeOp) != 1 {
			return fmt.Errorf("--op must be a single operator, not %q", composeOp)
		}
		e1, err := parseArg(args[0])
		if err != nil {
			return err
		}
		e2, err := parseArg(args[1])
		if err != nil {
			return err
		}
		r, err := symexpr.Compose(e1, e2, composeOp[0])
		if err != nil {
			return err
		}
		fmt.Println(r.Infix())
		fmt.Println("postfix:", r.Postfix())
		return nil
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply FUNC EXPR",
	Short: "Wrap an expression in a unary function (" + strings.Join(symexpr.Funcs(), ", ") + ")",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := parseArg(args[1])
		if err != nil {
			return err
		}
		r, err := symexpr.Apply(args[0], x)
		if err != nil {
			return err
		}
		fmt.Println(r.Infix())
		fmt.Println("postfix:", r.Postfix())
		return nil
	},
}

var (
	layoutCfg  symexpr.LayoutConfig
	layoutJSON bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout EXPR",
	Short: "Compute 2-D node positions for a host renderer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseArg(args[0])
		if err != nil {
			return err
		}
		places := a.Layout(layoutCfg)
		logger.Debug("laid out tree",
			zap.Int("depth", a.Depth()),
			zap.Int("nodes", len(places)))
		if layoutJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(places)
		}
		for i, p := range places {
			fmt.Printf("%3d  %-6s (%d, %d)  parent %d\n", i, p.Label, p.X, p.Y, p.Parent)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringArrayVar(&flagVars, "var", nil, "name=value variable binding (repeatable)")

	deriveCmd.Flags().StringVar(&deriveBy, "by", "x", "variable to differentiate by")
	deriveCmd.Flags().BoolVar(&deriveSimplify, "simplify", false, "simplify the derivative")

	composeCmd.Flags().StringVar(&composeOp, "op", "+", "binary operator joining the two expressions")

	layoutCmd.Flags().IntVar(&layoutCfg.OriginX, "origin-x", 0, "root x position")
	layoutCmd.Flags().IntVar(&layoutCfg.OriginY, "origin-y", 0, "root y position")
	layoutCmd.Flags().IntVar(&layoutCfg.XGap, "x-gap", symexpr.DefaultXGap, "initial horizontal child offset")
	layoutCmd.Flags().IntVar(&layoutCfg.YGap, "y-gap", symexpr.DefaultYGap, "vertical step per level")
	layoutCmd.Flags().IntVar(&layoutCfg.MaxWidth, "max-width", 0, "viewport width, 0 for unlimited")
	layoutCmd.Flags().IntVar(&layoutCfg.MaxHeight, "max-height", 0, "viewport height, 0 for unlimited")
	layoutCmd.Flags().BoolVar(&layoutJSON, "json", false, "emit JSON")

	rootCmd.AddCommand(evalCmd, infixCmd, postfixCmd, deriveCmd, simplifyCmd, composeCmd, applyCmd, layoutCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("command failed", zap.Error(err))
		}
		fmt.Fprintln(os.Stderr, "symexpr:", err)
		os.Exit(1)
	}
}

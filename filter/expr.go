package filter

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/file"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled boolean expression. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// Option configures a Compiler
type Option func(*Compiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) Option {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithFunctions adds custom helper functions
func WithFunctions(funcs map[string]any) Option {
	return func(c *Compiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// Compiler turns expressions into Filters.
type Compiler struct {
	helperFuncs map[string]any
	cache       *lruCache
}

// NewCompiler creates an expr-based filter compiler
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{
		helperFuncs: createHelperFunctions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles an expression that must evaluate to a boolean.
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
			Column:     -1,
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Item fields are only known at run time
	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, compilationError(expression, err)
	}

	f := &Filter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, f)
	}
	return f, nil
}

// Clear removes all cached filters
func (c *Compiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *Compiler) Size() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}

// Expression returns the source expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against item, usually a decoded resource such
// as a customer.Customer.
func (f *Filter) Match(item any) (bool, error) {
	result, err := expr.Run(f.program, newEnvironment(item, f.helpers))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Item:       describe(item),
			Err:        err,
		}
	}
	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			Item:       describe(item),
			Err:        fmt.Errorf("%w, got %T", ErrNotBoolean, result),
		}
	}
	return matched, nil
}

// Apply returns the items f matches, in their original order. Items the
// filter fails to evaluate on are left out.
func Apply[T any](f *Filter, items []T) []T {
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if ok, err := f.Match(item); err == nil && ok {
			matched = append(matched, item)
		}
	}
	return matched
}

func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	env["unix"] = func(seconds int) time.Time {
		return time.Unix(int64(seconds), 0).UTC()
	}
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	// Metadata helpers, rebound per item
	env["hasMetadata"] = createHasMetadataFunc(nil)
	env["metadata"] = createMetadataFunc(nil)
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["now"] = time.Now
}

func compilationError(expression string, err error) *CompilationError {
	ce := &CompilationError{
		Expression: expression,
		Reason:     err.Error(),
		Column:     -1,
		Err:        err,
	}
	var fileErr *file.Error
	if errors.As(err, &fileErr) {
		ce.Reason = fileErr.Message
		ce.Column = fileErr.Column
	}
	return ce
}

func describe(item any) string {
	if id := idOf(item); id != "" {
		return id
	}
	return fmt.Sprintf("%T", item)
}

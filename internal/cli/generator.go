// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/domset/builder"
)

var errBadGenerator = errors.New("bad generator spec")

// generator is a parsed -gen spec.
type generator struct {
	name string
	cons builder.Constructor
	opts []builder.BuilderOption
}

type genKind struct {
	params string
	build  func(p []string) (builder.Constructor, []builder.BuilderOption, error)
}

var generators = map[string]genKind{
	"path":      {"N", sized(builder.Path)},
	"cycle":     {"N", sized(builder.Cycle)},
	"star":      {"N", sized(builder.Star)},
	"wheel":     {"N", sized(builder.Wheel)},
	"complete":  {"N", sized(builder.Complete)},
	"bipartite": {"A:B", buildBipartite},
	"grid":      {"RxC", buildGrid},
	"random":    {"N:P:SEED", buildRandom},
	"regular":   {"N:D:SEED", buildRegular},
}

// parseGenerator validates spec ("kind:params") and binds it to a builder
// constructor. Size minimums are left to the constructor itself.
func parseGenerator(spec string) (*generator, error) {
	kindName, rest, _ := strings.Cut(spec, ":")
	kind, ok := generators[kindName]
	if !ok {
		return nil, fmt.Errorf("%w: unknown kind %q (want one of %s)",
			errBadGenerator, kindName, strings.Join(generatorKinds(), ", "))
	}

	params := strings.Split(rest, ":")
	if want := strings.Count(kind.params, ":") + 1; rest == "" || len(params) != want {
		return nil, fmt.Errorf("%w: %q wants %s:%s", errBadGenerator, spec, kindName, kind.params)
	}
	cons, opts, err := kind.build(params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec, err)
	}

	return &generator{name: spec, cons: cons, opts: opts}, nil
}

func generatorKinds() []string {
	kinds := maps.Keys(generators)
	slices.Sort(kinds)

	return kinds
}

func generatorUsage() []string {
	lines := make([]string, 0, len(generators))
	for _, k := range generatorKinds() {
		lines = append(lines, k+":"+generators[k].params)
	}

	return lines
}

func sized(fn func(int) builder.Constructor) func([]string) (builder.Constructor, []builder.BuilderOption, error) {
	return func(p []string) (builder.Constructor, []builder.BuilderOption, error) {
		n, err := atoi("N", p[0])
		if err != nil {
			return nil, nil, err
		}
		return fn(n), nil, nil
	}
}

func buildBipartite(p []string) (builder.Constructor, []builder.BuilderOption, error) {
	a, err := atoi("A", p[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := atoi("B", p[1])
	if err != nil {
		return nil, nil, err
	}

	return builder.CompleteBipartite(a, b), nil, nil
}

func buildGrid(p []string) (builder.Constructor, []builder.BuilderOption, error) {
	rs, cs, ok := strings.Cut(p[0], "x")
	if !ok {
		return nil, nil, fmt.Errorf("%w: grid size %q is not RxC", errBadGenerator, p[0])
	}
	r, err := atoi("R", rs)
	if err != nil {
		return nil, nil, err
	}
	c, err := atoi("C", cs)
	if err != nil {
		return nil, nil, err
	}

	return builder.Grid(r, c), nil, nil
}

func buildRandom(p []string) (builder.Constructor, []builder.BuilderOption, error) {
	n, err := atoi("N", p[0])
	if err != nil {
		return nil, nil, err
	}
	prob, err := strconv.ParseFloat(p[1], 64)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: P %q is not a number", errBadGenerator, p[1])
	}
	seed, err := strconv.ParseInt(p[2], 10, 64)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: SEED %q is not an integer", errBadGenerator, p[2])
	}

	return builder.RandomSparse(n, prob), []builder.BuilderOption{builder.WithSeed(seed)}, nil
}

func buildRegular(p []string) (builder.Constructor, []builder.BuilderOption, error) {
	n, err := atoi("N", p[0])
	if err != nil {
		return nil, nil, err
	}
	d, err := atoi("D", p[1])
	if err != nil {
		return nil, nil, err
	}
	seed, err := strconv.ParseInt(p[2], 10, 64)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: SEED %q is not an integer", errBadGenerator, p[2])
	}

	return builder.RandomRegular(n, d), []builder.BuilderOption{builder.WithSeed(seed)}, nil
}

func atoi(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", errBadGenerator, name, s)
	}

	return n, nil
}

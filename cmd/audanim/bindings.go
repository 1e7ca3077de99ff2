// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ik5/audanim/animator"
	"github.com/ik5/audanim/envelope"
)

var (
	errBadRange = errors.New("range must be written as min:max")
	errNoTarget = errors.New("no target given, use --left, --right or --sub")
)

// parseBinding reads "target" or "target:properties". An empty string
// leaves the channel unbound.
func parseBinding(s string) animator.Binding {
	target, props, _ := strings.Cut(s, ":")
	return animator.Binding{
		Target:   strings.TrimSpace(target),
		Property: strings.TrimSpace(props),
	}
}

// parseRange reads "min:max". An empty string means no range.
func parseRange(s string) (*envelope.Range, error) {
	if s == "" {
		return nil, nil
	}

	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("%q: %w", s, errBadRange)
	}

	minV, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", s, errBadRange)
	}
	maxV, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", s, errBadRange)
	}

	r := &envelope.Range{Min: minV, Max: maxV}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("%q: %w", s, err)
	}
	return r, nil
}

// buildBindings turns the per-channel flag values into bindings, in
// left, right, sub order.
func buildBindings(targets, ranges [animator.MaxChannels]string) ([animator.MaxChannels]animator.Binding, error) {
	var out [animator.MaxChannels]animator.Binding
	for i := range out {
		b := parseBinding(targets[i])
		r, err := parseRange(ranges[i])
		if err != nil {
			return out, fmt.Errorf("channel %s: %w", animator.Suffixes[i], err)
		}
		b.Range = r
		out[i] = b
	}
	return out, nil
}

// targetIDs lists the distinct targets named by bindings.
func targetIDs(bindings [animator.MaxChannels]animator.Binding) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, b := range bindings {
		if b.Target == "" || seen[b.Target] {
			continue
		}
		seen[b.Target] = true
		ids = append(ids, b.Target)
	}
	return ids
}

//
// hivemind - UHP Hive game engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2023-2025 Crystal Spider
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package uhp

import (
	"strconv"
	"strings"

	. "github.com/crystal-spider/hivemind/internal/config"
	"github.com/crystal-spider/hivemind/internal/search"
)

// uhpOptionType is an enum representing the different UHP option types
type uhpOptionType string

// uhp option type constants
const (
	Bool   uhpOptionType = "bool"
	Int    uhpOptionType = "int"
	Double uhpOptionType = "double"
	Enum   uhpOptionType = "enum"
)

// optionHandler is a function type to be used as function pointer in
// each uhp option defined. This is called when the option is changed by
// the "options set" command; it returns false when the value is invalid.
type optionHandler func(*UhpHandler, *uhpOption, string) bool

// uhpOption defines an engine option as reported by the options command.
type uhpOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uhpOptionType
	CurrentValue func() string
	DefaultValue string
	MinValue     string
	MaxValue     string
	EnumValues   []string
}

// optionMap convenience type for a map of pointers to uhp options
type optionMap map[string]*uhpOption

// uhpOptions stores all available uhp options
var uhpOptions optionMap

// to control the sort order of all options
var sortOrderUhpOptions []string

// init will define all available uhp options and store them into the uhpOptions map
func init() {
	strategyNames := make([]string, len(search.Strategies))
	for i, strategy := range search.Strategies {
		strategyNames[i] = string(strategy)
	}
	uhpOptions = optionMap{
		"StrategyWhite": {
			NameID:       "StrategyWhite",
			HandlerFunc:  setStrategyWhite,
			OptionType:   Enum,
			CurrentValue: func() string { return Settings.Search.StrategyWhite },
			DefaultValue: "Negamax",
			EnumValues:   strategyNames,
		},
		"StrategyBlack": {
			NameID:       "StrategyBlack",
			HandlerFunc:  setStrategyBlack,
			OptionType:   Enum,
			CurrentValue: func() string { return Settings.Search.StrategyBlack },
			DefaultValue: "Negamax",
			EnumValues:   strategyNames,
		},
		"MaxBranchingFactor": {
			NameID:       "MaxBranchingFactor",
			HandlerFunc:  setMaxBranchingFactor,
			OptionType:   Int,
			CurrentValue: func() string { return strconv.Itoa(Settings.Search.MaxBranchingFactor) },
			DefaultValue: "64",
			MinValue:     "1",
			MaxValue:     "500",
		},
		"NumThreads": {
			NameID:       "NumThreads",
			HandlerFunc:  setNumThreads,
			OptionType:   Int,
			CurrentValue: func() string { return strconv.Itoa(Settings.Search.NumThreads) },
			DefaultValue: "1",
			MinValue:     "1",
			MaxValue:     "64",
		},
	}
	sortOrderUhpOptions = []string{
		"StrategyWhite",
		"StrategyBlack",
		"MaxBranchingFactor",
		"NumThreads",
	}
}

// String returns the wire representation of the option:
// Name;type;value;default followed by min and max for int options and by
// the allowed values for enum options.
func (o *uhpOption) String() string {
	var sb strings.Builder
	sb.WriteString(o.NameID)
	sb.WriteString(";")
	sb.WriteString(string(o.OptionType))
	sb.WriteString(";")
	sb.WriteString(o.CurrentValue())
	sb.WriteString(";")
	sb.WriteString(o.DefaultValue)
	switch o.OptionType {
	case Int, Double:
		sb.WriteString(";")
		sb.WriteString(o.MinValue)
		sb.WriteString(";")
		sb.WriteString(o.MaxValue)
	case Enum:
		for _, value := range o.EnumValues {
			sb.WriteString(";")
			sb.WriteString(value)
		}
	}
	return sb.String()
}

// optionsCommand handles "options", "options get Name" and
// "options set Name Value".
func (u *UhpHandler) optionsCommand(tokens []string) {
	switch {
	case len(tokens) == 1:
		for _, name := range sortOrderUhpOptions {
			u.send(uhpOptions[name].String())
		}
		u.sendOk()
	case tokens[1] == "get" && len(tokens) == 3:
		if option, found := uhpOptions[tokens[2]]; found {
			u.send(option.String())
			u.sendOk()
			return
		}
		u.sendError(out.Sprintf("Command 'options': No such option '%s'", tokens[2]))
	case tokens[1] == "set" && len(tokens) == 4:
		option, found := uhpOptions[tokens[2]]
		if !found {
			u.sendError(out.Sprintf("Command 'options': No such option '%s'", tokens[2]))
			return
		}
		if !option.HandlerFunc(u, option, tokens[3]) {
			u.sendError(out.Sprintf("Command 'options': Invalid value '%s' for option '%s'", tokens[3], tokens[2]))
			return
		}
		log.Debugf("Set option %s to %s", option.NameID, tokens[3])
		u.send(option.String())
		u.sendOk()
	default:
		u.sendError("Command 'options' is malformed")
	}
}

// ////////////////////////////////////////////////////////////////
// HandlerFunc for uhp options changes
// ////////////////////////////////////////////////////////////////

func setStrategyWhite(u *UhpHandler, o *uhpOption, value string) bool {
	if _, ok := search.ParseStrategy(value); !ok {
		return false
	}
	Settings.Search.StrategyWhite = value
	u.rebuildBrains()
	return true
}

func setStrategyBlack(u *UhpHandler, o *uhpOption, value string) bool {
	if _, ok := search.ParseStrategy(value); !ok {
		return false
	}
	Settings.Search.StrategyBlack = value
	u.rebuildBrains()
	return true
}

func setMaxBranchingFactor(u *UhpHandler, o *uhpOption, value string) bool {
	v, err := strconv.Atoi(value)
	if err != nil || v < 1 || v > 500 {
		return false
	}
	Settings.Search.MaxBranchingFactor = v
	return true
}

func setNumThreads(u *UhpHandler, o *uhpOption, value string) bool {
	v, err := strconv.Atoi(value)
	if err != nil || v < 1 || v > 64 {
		return false
	}
	// advisory only, the search is single threaded
	Settings.Search.NumThreads = v
	return true
}

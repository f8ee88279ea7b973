package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fsamin/go-dump"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// ExitOnError if the error is not nil; exit the process with printing help functions and the error
func ExitOnError(err error, helpFunc ...func() error) {
	if err == nil {
		return
	}

	code := 50 // default error code

	switch e := err.(type) {
	case *Error:
		code = e.Code
		fmt.Println("Error:", e.Error())
	default:
		fmt.Println("Error:", err.Error())
	}

	for _, f := range helpFunc {
		f() // nolint
	}

	OSExit(code)
}

// OSExit terminates the process with the given code.
var OSExit = os.Exit

// SubCommands represents an array of cobra.Command
type SubCommands []*cobra.Command

// NewCommand creates a new cobra command with or without a RunFunc and eventually subCommands
func NewCommand(c Command, run RunFunc, subCommands SubCommands, mod ...CommandModifier) *cobra.Command {
	return newCommand(c, run, subCommands, mod...)
}

// NewGetCommand creates a new cobra command with a RunGetFunc and eventually subCommands
func NewGetCommand(c Command, run RunGetFunc, subCommands SubCommands, mod ...CommandModifier) *cobra.Command {
	return newCommand(c, run, subCommands, mod...)
}

// NewListCommand creates a new cobra command with a RunListFunc and eventually subCommands
func NewListCommand(c Command, run RunListFunc, subCommands SubCommands, mod ...CommandModifier) *cobra.Command {
	return newCommand(c, run, subCommands, mod...)
}

func newCommand(c Command, run interface{}, subCommands SubCommands, mods ...CommandModifier) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = c.Name

	for _, a := range c.Args {
		cmd.Use = cmd.Use + " " + strings.ToUpper(a.Name)
	}
	for _, a := range c.OptionalArgs {
		cmd.Use = cmd.Use + " [" + strings.ToUpper(a.Name) + "]"
	}

	if len(mods) == 0 {
		mods = []CommandModifier{CommandWithExtraFlags}
	}

	if run != nil {
		for _, mod := range mods {
			mod(&c, run)
		}
	}
	cmd.Aliases = c.Aliases
	for _, f := range c.Flags {
		switch f.Type {
		case FlagBool:
			b, _ := strconv.ParseBool(f.Default)
			_ = cmd.Flags().BoolP(f.Name, f.ShortHand, b, f.Usage)
		case FlagSlice:
			_ = cmd.Flags().StringSliceP(f.Name, f.ShortHand, nil, f.Usage)
		case FlagArray:
			_ = cmd.Flags().StringArrayP(f.Name, f.ShortHand, nil, f.Usage)
		default:
			_ = cmd.Flags().StringP(f.Name, f.ShortHand, f.Default, f.Usage)
		}
	}

	definedArgs := append([]Arg{}, c.Args...)
	definedArgs = append(definedArgs, c.OptionalArgs...)

	cmd.Short = c.Short
	cmd.Long = c.Long
	cmd.Hidden = c.Hidden
	cmd.Example = c.Example

	cmd.AddCommand(subCommands...)

	if run == nil || reflect.ValueOf(run).IsNil() {
		cmd.Run = nil
		cmd.RunE = nil
		return cmd
	}

	var argsToVal = func(args []string) (Values, error) {
		vals := Values{}
		for i := range args {
			s := definedArgs[i].Name
			if definedArgs[i].IsValid != nil && !definedArgs[i].IsValid(args[i]) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is invalid\n", s)
				return nil, ErrWrongUsage
			}
			vals[s] = append(vals[s], args[i])
		}

		for i := range c.Flags {
			s := c.Flags[i].Name
			switch c.Flags[i].Type {
			case FlagBool:
				b, err := cmd.Flags().GetBool(s)
				if err != nil {
					return nil, err
				}
				vals[s] = append(vals[s], fmt.Sprintf("%v", b))
			case FlagSlice:
				slice, err := cmd.Flags().GetStringSlice(s)
				if err != nil {
					return nil, err
				}
				vals[s] = append(vals[s], strings.Join(slice, "||"))
			case FlagArray:
				array, err := cmd.Flags().GetStringArray(s)
				if err != nil {
					return nil, err
				}
				vals[s] = array
			default:
				val, err := cmd.Flags().GetString(s)
				if err != nil {
					return nil, err
				}
				vals[s] = append(vals[s], val)
			}
			if c.Flags[i].IsValid != nil {
				for _, v := range vals[s] {
					if !c.Flags[i].IsValid(v) {
						fmt.Fprintf(cmd.OutOrStdout(), "%s is invalid\n", s)
						return nil, ErrWrongUsage
					}
				}
			}
		}
		return vals, nil
	}

	cmd.Run = func(cmd *cobra.Command, args []string) {
		//Command must receive as least mandatory args
		if len(c.Args) > len(args) {
			ExitOnError(ErrWrongUsage, cmd.Help)
			return
		}

		//If there is more args than expected
		if len(args) > len(definedArgs) {
			ExitOnError(ErrWrongUsage, cmd.Help)
			return
		}

		vals, err := argsToVal(args)
		if err != nil {
			ExitOnError(err, cmd.Help)
			return
		}
		f, _ := cmd.Flags().GetString("file")
		v, _ := cmd.Flags().GetBool("verbose")
		n, _ := cmd.Flags().GetBool("no-color")
		vals["file"] = append(vals["file"], f)
		vals["verbose"] = append(vals["verbose"], fmt.Sprintf("%v", v))
		vals["no-color"] = append(vals["no-color"], fmt.Sprintf("%v", n))

		format, _ := cmd.Flags().GetString("format")
		out := cmd.OutOrStdout()

		switch f := run.(type) {
		case RunFunc:
			ExitOnError(f(vals))

		case RunGetFunc:
			i, err := f(vals)
			if err != nil {
				ExitOnError(err)
				return
			}

			quiet, _ := cmd.Flags().GetBool("quiet")
			i = listItem(i, nil, quiet, nil, true, map[string]string{})
			switch format {
			case "json":
				b, err := json.Marshal(i)
				ExitOnError(err)
				fmt.Fprintln(out, string(b))
			case "yaml":
				b, err := yaml.Marshal(i)
				ExitOnError(err)
				fmt.Fprint(out, string(b))
			default:
				if quiet {
					fmt.Fprintln(out, i.(map[string]string)["key"])
					return
				}
				w := tabwriter.NewWriter(out, 10, 0, 1, ' ', 0)
				m := i.(map[string]string)

				itemKeys := []string{}
				for k := range m {
					itemKeys = append(itemKeys, k)
				}
				sort.Strings(itemKeys)

				for _, k := range itemKeys {
					fmt.Fprintln(w, k+"\t"+m[k])
				}
				w.Flush()
			}

		case RunListFunc:
			quiet, _ := cmd.Flags().GetBool("quiet")
			filter, _ := cmd.Flags().GetString("filter")
			fs, _ := cmd.Flags().GetStringSlice("fields")
			var filters = make(map[string]string)
			if filter != "" {
				t := strings.Split(filter, " ")
				for i := range t {
					s := strings.SplitN(t[i], "=", 2)
					if len(s) != 2 {
						ExitOnError(fmt.Errorf("Filter should be formatted like name=value"))
						return
					}
					filters[s[0]] = s[1]
				}
			}

			s, err := f(vals)
			if err != nil {
				ExitOnError(err)
				return
			}

			tableHeader := []string{}
			tableData := [][]string{}
			var tableHeaderReady bool
			allResult := []map[string]string{}

			for _, i := range s {
				item := listItem(i, filters, quiet, fs, false, map[string]string{})
				if len(item) == 0 {
					continue
				}

				if quiet {
					fmt.Fprintln(out, item["key"])
					continue
				}

				allResult = append(allResult, item)

				itemKeys := []string{}
				for k := range item {
					itemKeys = append(itemKeys, k)
				}
				sort.Strings(itemKeys)

				itemData := make([]string, 0, len(item))
				for _, k := range itemKeys {
					if !tableHeaderReady {
						tableHeader = append(tableHeader, strings.ToTitle(k))
					}
					itemData = append(itemData, item[k])
				}
				tableHeaderReady = true
				tableData = append(tableData, itemData)
			}

			if quiet {
				return
			}

			switch format {
			case "json":
				b, err := json.Marshal(allResult)
				ExitOnError(err)
				fmt.Fprintln(out, string(b))
			case "yaml":
				b, err := yaml.Marshal(allResult)
				ExitOnError(err)
				fmt.Fprint(out, string(b))
			default:
				if len(tableData) == 0 {
					fmt.Fprintln(out, "nothing to display...")
					return
				}
				table := tablewriter.NewWriter(out)
				table.SetHeader(tableHeader)
				table.AppendBulk(tableData)
				table.Render()
			}

		default:
			panic(fmt.Errorf("Unknown function type: %T", f))
		}
	}

	return cmd
}

// listItem flattens a struct into a map using its "cli" tags. Fields
// without tag are kept only in verbose mode, "-" hides a field and a
// ",key" suffix marks the key displayed in quiet mode.
func listItem(i interface{}, filters map[string]string, quiet bool, fields []string, verbose bool, res map[string]string) map[string]string {
	var s reflect.Value
	if reflect.ValueOf(i).Kind() == reflect.Ptr {
		s = reflect.ValueOf(i).Elem()
	} else {
		s = reflect.ValueOf(i)
	}

	if s.Kind() != reflect.Struct {
		return nil
	}

	t := s.Type()

	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		structField := t.Field(i)
		if structField.PkgPath != "" {
			continue
		}
		if f.Kind() == reflect.Ptr {
			f = f.Elem()
		}
		switch f.Kind() {
		case reflect.Array, reflect.Slice, reflect.Map, reflect.Func:
			continue
		}

		tag := structField.Tag.Get("cli")
		if tag == "-" {
			continue
		}

		if structField.Anonymous && f.Kind() == reflect.Struct {
			res = listItem(f.Interface(), filters, quiet, fields, verbose, res)
			continue
		}

		var isKey bool
		if strings.HasSuffix(tag, ",key") {
			isKey = true
			tag = strings.Replace(tag, ",key", "", -1)
		}
		if !verbose && tag == "" {
			continue
		}
		if tag == "" {
			tag = structField.Name
		}

		// nested structs are flattened as tag_field
		if f.Kind() == reflect.Struct {
			sub, err := dump.ToStringMap(f.Interface())
			if err != nil {
				ExitOnError(NewError("unable to display %s: %v", tag, err))
				return nil
			}
			if quiet {
				continue
			}
			for k, v := range sub {
				k = dumpFieldName(k)
				if k == "" {
					continue
				}
				name := tag + "_" + k
				if fieldVisible(fields, tag, name) {
					res[name] = v
				}
			}
			continue
		}

		var value string
		if f.IsValid() {
			value = fmt.Sprintf("%v", f.Interface())
		}

		// if there are filters and current tag value not match return nil item
		for k, v := range filters {
			if !strings.EqualFold(k, tag) {
				continue
			}
			if !strings.HasPrefix(v, "^") {
				v = "^" + v
			}
			if !strings.HasSuffix(v, "$") {
				v = v + "$"
			}
			matchValue, err := regexp.MatchString(v, value)
			if err != nil {
				ExitOnError(NewError("invalid filter %s: %v", k, err))
				return nil
			}
			if !matchValue {
				return nil
			}
		}

		// if there are fields list, add only tag that match in result (ignore for quiet mode)
		if !quiet && !fieldVisible(fields, tag) {
			continue
		}

		// if not quiet mode add the key:value to result else if quiet add only the key
		if !quiet {
			res[tag] = value
		} else if isKey {
			res["key"] = value
		}
	}
	return res
}

// fieldVisible returns true if no fields were asked or one of names was.
func fieldVisible(fields []string, names ...string) bool {
	if len(fields) == 0 {
		return true
	}
	for _, f := range fields {
		for _, n := range names {
			if strings.EqualFold(f, n) {
				return true
			}
		}
	}
	return false
}

// dumpFieldName keeps the last path element of a go-dump key, lowercased.
// Extra fields such as __Type__ are dropped.
func dumpFieldName(k string) string {
	if i := strings.LastIndex(k, "."); i >= 0 {
		k = k[i+1:]
	}
	if strings.HasPrefix(k, "__") {
		return ""
	}
	return strings.ToLower(k)
}

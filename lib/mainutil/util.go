package mainutil

import (
	"strings"
)

const (
	optionAuthData       = "authdata"
	optionAuthType       = "authtype"
	optionDialTimeout    = "dialTimeout"
	optionPassword       = "password"
	optionSessionTimeout = "sessionTimeout"
	optionTLS            = "tls"
	optionUsername       = "username"

	optionValueOn = "on"
)

var incompleteOptions = map[string]string{
	optionTLS: optionValueOn,
}

func splitOption(str string) (string, string, bool, error) {
	i := strings.IndexByte(str, '=')
	if i >= 0 {
		return str[:i], str[i+1:], true, nil
	}

	name := str
	value, found := incompleteOptions[name]
	if found {
		return name, value, false, nil
	}

	return name, "", false, OptionError{
		Name:     name,
		Value:    "",
		Complete: false,
		Err:      MissingOptionValueError{},
	}
}

func splitList(str string) []string {
	pieces := strings.Split(str, ",")
	out := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

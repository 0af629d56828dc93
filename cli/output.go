package cli

import (
	"encoding/json"
	"fmt"
	"github.com/haleyga/kraken-cryptoexchange-api/exchange/kraken"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//
// render unwraps the response envelope and prints the result in the requested output format.
// Errors reported by the exchange come back as a *kraken.APIError.
//
func (o *options) render(cmd *cobra.Command, resp *kraken.Response, err error) error {
	if err != nil {
		return err
	}

	var result interface{}

	if err := resp.Decode(&result); err != nil {
		return err
	}

	return o.print(cmd, result)
}

func (o *options) print(cmd *cobra.Command, data interface{}) error {
	switch o.output {
	case "yaml":
		out, err := yaml.Marshal(data)
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))

		return err
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")

		return encoder.Encode(data)
	default:
		return fmt.Errorf("unknown output format: %s", o.output)
	}
}

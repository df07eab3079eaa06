package filters

import "github.com/irfndi/oddsframe/internal/utils"

func columnError(kind Kind, missing []string) error {
	return utils.NewColumnError(string(kind)+" filter", missing...)
}

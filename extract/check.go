package extract

import (
	"strings"

	"github.com/fwojciec/prodmd"
)

// CheckPage verifies that location is a product page of the configured
// site. Extraction must not run on any other page.
func CheckPage(location string, cfg prodmd.Config) error {
	if !strings.Contains(location, cfg.Site) {
		return prodmd.Errorf(prodmd.EPRECONDITION, "Cette extension fonctionne uniquement sur %s", cfg.Site)
	}
	if !strings.Contains(location, "/dp/") {
		return prodmd.Errorf(prodmd.EPRECONDITION, "Naviguez sur une page produit Amazon (URL avec /dp/)")
	}
	return nil
}

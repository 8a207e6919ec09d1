package runner

import (
	"github.com/projectdiscovery/gologger"
)

var banner = (`
.__
|  |   ____ ___  ___ ____   ____   ____
|  | _/ __ \  \/  // ___\_/ __ \ /    \
|  |_\  ___/ >    < \  \___\  ___/|   |  \
|____/ \___  >__/\_ \ \___  >___  >___|  /
           \/      \/     \/    \/     \/
`)

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tcoregx lexical scanner generator\n\n")
}

// Version returns the current lexgen version string
func Version() string {
	return version
}

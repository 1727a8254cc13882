// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"fmt"

	"github.com/stakevault/stakevaultgo/utils/constants"
)

var Current = &Application{
	Name:  constants.AppName,
	Major: 1,
	Minor: 2,
	Patch: 0,
}

// Application is a version of the application itself
type Application struct {
	Name  string `json:"name"`
	Major int    `json:"major"`
	Minor int    `json:"minor"`
	Patch int    `json:"patch"`
}

func (a *Application) String() string {
	return fmt.Sprintf("%s/%d.%d.%d", a.Name, a.Major, a.Minor, a.Patch)
}

/*
Copyright © 2019 the GCTP authors.
This file is part of GCTP.

GCTP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GCTP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GCTP.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command gctp is a command-line interface for the GCTP coordinate
// transformation package.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/gctp/gctputil"
)

func main() {
	if err := gctputil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

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

package gctp

import (
	"context"
	"reflect"
	"sync"
	"testing"

	"github.com/spatialmodel/gctp/units"
)

func TestCache(t *testing.T) {
	c := NewCache(10)
	ctx := context.Background()
	utm := Params{Code: UTM, Zone: 15, Units: units.Meter, Spheroid: wgs84}

	first, err := c.Get(ctx, geoDeg, utm)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Get(ctx, geoDeg, utm)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("transformation is not shared")
	}
	if have, want := c.Requests(), []int{2, 2, 1}; !reflect.DeepEqual(have, want) {
		t.Errorf("requests %v != %v", have, want)
	}

	x, y, err := second.Transform(-93, 0)
	if err != nil {
		t.Fatal(err)
	}
	if x != 500000 || y != 0 {
		t.Errorf("(%g, %g) != (500000, 0)", x, y)
	}

	other := utm
	other.Zone = 16
	if _, err := c.Get(ctx, geoDeg, other); err != nil {
		t.Fatal(err)
	}
	if have, want := c.Requests(), []int{3, 3, 2}; !reflect.DeepEqual(have, want) {
		t.Errorf("requests %v != %v", have, want)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache(10)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(zone int) {
			defer wg.Done()
			tr, err := c.Get(context.Background(), geoDeg, Params{Code: UTM, Zone: zone, Units: units.Meter, Spheroid: wgs84})
			if err != nil {
				t.Error(err)
				return
			}
			if _, _, err := tr.Transform(float64(6*zone-183), 10); err != nil {
				t.Error(err)
			}
		}(10 + i%2)
	}
	wg.Wait()
	if have := c.Requests(); have[0] != 8 {
		t.Errorf("requests %v", have)
	}
}

func TestCacheError(t *testing.T) {
	sink, msgs := collect()
	c := NewCache(10, sink)
	if _, err := c.Get(context.Background(), geoDeg, Params{Code: 40}); err == nil {
		t.Error("illegal code should fail")
	}
	if len(*msgs) != 1 {
		t.Errorf("%d messages", len(*msgs))
	}
}

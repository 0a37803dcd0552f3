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
	"runtime"

	"github.com/ctessum/requestcache"
	"github.com/spatialmodel/gctp/internal/hash"
)

// Cache memoizes Transformations by their source and target systems.
// Concurrent requests for the same pair share one construction. It is
// safe for concurrent use.
//
// Transformations returned by a Cache are shared and must not be
// destroyed by the caller.
type Cache struct {
	c *requestcache.Cache
}

type pairRequest struct {
	Src, Dst Params
}

// NewCache returns a cache holding up to size transformations, each
// built with opts.
func NewCache(size int, opts ...Option) *Cache {
	return &Cache{
		c: requestcache.NewCache(func(ctx context.Context, request interface{}) (interface{}, error) {
			r := request.(pairRequest)
			return New(r.Src, r.Dst, opts...)
		}, runtime.GOMAXPROCS(-1), requestcache.Deduplicate(), requestcache.Memory(size)),
	}
}

// Get returns the transformation from src to dst, building it on first
// use.
func (c *Cache) Get(ctx context.Context, src, dst Params) (*Transformation, error) {
	r := pairRequest{Src: src, Dst: dst}
	result, err := c.c.NewRequest(ctx, r, hash.Hash(r)).Result()
	if err != nil {
		return nil, err
	}
	return result.(*Transformation), nil
}

// Requests returns the number of requests received by the deduplicator,
// the memory cache and the constructor, in that order.
func (c *Cache) Requests() []int { return c.c.Requests() }

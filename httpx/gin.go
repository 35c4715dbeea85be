/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dirpx.dev/errinfo/adapter"
)

// Gin returns a gin middleware that renders the last error attached to the
// context (c.Error) as an apis.ErrorView JSON body.
//
// Nothing is written when the handler already wrote a response or recorded
// no error.
func (w *Writer[T]) Gin() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		info, ok := w.resolve(c.Errors.Last().Err)
		if !ok {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.AbortWithStatusJSON(info.AppCode.HTTPStatus(), adapter.ToView(info, w.Messages))
	}
}

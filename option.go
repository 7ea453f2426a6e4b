/*
 * Copyright 2025 The RowForge Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package rowforge

import (
	"github.com/rowforge/rowforge/logger"
)

// Option configures engine-wide behavior when building a Frame.
type Option func()

// WithLogLevel sets the level of the default logger.
func WithLogLevel(level logger.Level) Option {
	return func() {
		logger.GetDefault().SetLevel(level)
	}
}

// WithDiscardLog disables all log output.
func WithDiscardLog() Option {
	return func() {
		logger.SetDefault(logger.NewDiscardLogger())
	}
}

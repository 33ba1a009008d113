// Copyright 2016 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package qlog provides a pluggable logging seam for qstore. The store
// itself never requires logging to function correctly; this package exists
// so an embedding process can observe rare, noteworthy events (arena
// overflow, id reuse, interner failures) without qstore taking on a hard
// dependency on any particular logging library.
package qlog

import "log"

// Logger is the qlog logging interface.
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

var logger Logger = stdlog{}

// SetLogger sets the qlog logging implementation used by package-level
// Infof/Warningf/Errorf calls.
func SetLogger(l Logger) {
	if l == nil {
		l = stdlog{}
	}
	logger = l
}

var verbosity int

// V reports whether the current qlog verbosity is at or above level.
func V(level int) bool { return verbosity >= level }

// SetV sets the qlog verbosity level.
func SetV(level int) { verbosity = level }

// Infof logs an informational message.
func Infof(format string, args ...interface{}) { logger.Infof(format, args...) }

// Warningf logs a warning, used for noteworthy events that are not errors
// (e.g. an id-reuse notice).
func Warningf(format string, args ...interface{}) { logger.Warningf(format, args...) }

// Errorf logs an error, used before returning a typed error such as
// qerrors.ErrOverflow.
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }

// stdlog is the default Logger, backed by the standard library logger.
type stdlog struct{}

func (stdlog) Infof(format string, args ...interface{})    { log.Printf(format, args...) }
func (stdlog) Warningf(format string, args ...interface{}) { log.Printf("WARN: "+format, args...) }
func (stdlog) Errorf(format string, args ...interface{})   { log.Printf("ERROR: "+format, args...) }

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

// Package glogr adapts github.com/golang/glog to the qlog.Logger
// interface. It is a separate package from qlog so that pulling in glog
// (and its flag registration) is opt-in, not a transitive dependency of
// every qstore consumer.
package glogr

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/cayleygraph/qstore/internal/qlog"
)

// Logger adapts glog to qlog.Logger.
type Logger struct{}

// Install sets Logger as the active qlog.Logger.
func Install() {
	qlog.SetLogger(Logger{})
}

func (Logger) Infof(format string, args ...interface{}) {
	glog.InfoDepth(1, fmt.Sprintf(format, args...))
}

func (Logger) Warningf(format string, args ...interface{}) {
	glog.WarningDepth(1, fmt.Sprintf(format, args...))
}

func (Logger) Errorf(format string, args ...interface{}) {
	glog.ErrorDepth(1, fmt.Sprintf(format, args...))
}

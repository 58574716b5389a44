package apitest

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"github.com/toolshop-qa/api-test-harness/framework/helpers"
)

// maxFrames bounds how far up the call stack a failure location is traced.
const maxFrames = 64

// Frame is one call site in the location of a test failure.
type Frame struct {
	File     string // base name only
	Package  string
	Function string
	Line     int
}

// LocatedError is a test failure together with the scenario code that reported it, innermost
// call first. Frames inside this package and functions marked with T.Helper are left out.
type LocatedError struct {
	Message string
	Frames  []Frame
}

func (e LocatedError) Error() string { return e.Message }

// Trace returns one line per frame, suitable for a report.
func (e LocatedError) Trace() []string {
	lines := make([]string, 0, len(e.Frames))
	for _, f := range e.Frames {
		lines = append(lines, f.String())
	}
	return lines
}

func (f Frame) String() string {
	pkg := strings.TrimPrefix(f.Package, modulePath()+"/")
	return fmt.Sprintf("%s.%s (%s:%d)", pkg, f.Function, f.File, f.Line)
}

// apitestPackage is the import path of this package.
func apitestPackage() string {
	return reflect.TypeOf((*T)(nil)).Elem().PkgPath()
}

// modulePath is the import path two levels up from this package (framework/apitest).
func modulePath() string {
	return path.Dir(path.Dir(apitestPackage()))
}

// locate replaces any trace testify wrote into the message with the frames we collected.
func locate(err error, frames []Frame) error {
	message := helpers.StripTestifyTrace(err.Error())
	if len(frames) == 0 {
		return errors.New(message)
	}
	return LocatedError{Message: message, Frames: frames}
}

// callerFrames walks the stack of the calling goroutine up to the apitest.Run that started the
// test run. Frames from this package are dropped unless includeOwn is set, and so are frames
// of any fully-qualified function name in helperFns.
func callerFrames(includeOwn bool, helperFns []string) []Frame {
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(2, pcs) // skip runtime.Callers and callerFrames
	own := apitestPackage()
	hidden := make(map[string]bool, len(helperFns))
	for _, fn := range helperFns {
		hidden[fn] = true
	}

	var ret []Frame
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		pkg, fn := splitFuncName(frame.Function)
		if pkg == own && fn == "Run" {
			break
		}
		if (includeOwn || pkg != own) && !hidden[frame.Function] && frame.Function != "" {
			ret = append(ret, Frame{File: path.Base(frame.File), Package: pkg, Function: fn, Line: frame.Line})
		}
		if !more {
			break
		}
	}
	return ret
}

// splitFuncName separates a qualified name like "example.com/a/b.(*T).run" into the package
// path and the rest. The package ends at the first dot after the last slash.
func splitFuncName(qualified string) (pkg, fn string) {
	slash := strings.LastIndexByte(qualified, '/')
	dot := strings.IndexByte(qualified[slash+1:], '.')
	if dot < 0 {
		return "", qualified
	}
	split := slash + 1 + dot
	return qualified[:split], qualified[split+1:]
}

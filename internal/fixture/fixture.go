// Package fixture implements xunit-style test fixtures for this module's tests.
//
// http://en.wikipedia.org/wiki/XUnit
//
// Test cases run in the order they were registered, each wrapped in the
// fixture's setup and teardown, and all output is gathered into one log entry
// on the underlying *testing.T.
package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/smartystreets/assertions"
)

// T contains the methods we use on the testing.T that is passed into the fixture.
// Using this interface instead of the testing.T directly allows for easier
// verification of correct behavior via automated testing.
type T interface {
	Fail()
	SkipNow()
	Log(...interface{})
}

type testCase struct {
	description string
	action      func()
}

// A simple xunit-style test fixture. Call NewFixture to create one.
type Fixture struct {
	t T

	frozen  bool // frozen prevents setup, teardown, and tests from being registered.
	spoiled bool // spoiled marks the whole fixture as failed.

	setup    func()
	teardown func()

	tests   []testCase
	names   map[string]struct{}
	focused map[string]struct{}
	skipped map[string]struct{}

	output *bytes.Buffer
}

// NewFixture creates a new test fixture. Register setup, teardown and test
// cases, then call Run (usually deferred right after construction).
func NewFixture(description string, t T) *Fixture {
	return &Fixture{
		t: t,

		setup:    func() {},
		teardown: func() {},

		names:   make(map[string]struct{}),
		focused: make(map[string]struct{}),
		skipped: make(map[string]struct{}),

		output:  bytes.NewBufferString(description + "\n"),
		spoiled: len(description) == 0,
	}
}

// SkipNewFixture creates a fixture that ignores every registration and
// reports the test as skipped when run.
func SkipNewFixture(description string, t T) *Fixture {
	return &Fixture{
		t:      t,
		frozen: true,
		output: bytes.NewBufferString(description + " (skipped)\n"),
	}
}

// Setup registers a function to be run before each test case.
// Subsequent calls to this function overwrite the previously registered
// setup function.
func (self *Fixture) Setup(action func()) {
	if self.frozen {
		return
	}
	self.setup = action
}

// Teardown registers a function to be run after each test case,
// even when test cases panic. Subsequent calls to this function
// overwrite the previously registered teardown function.
func (self *Fixture) Teardown(action func()) {
	if self.frozen {
		return
	}
	self.teardown = action
}

// Test registers a test case, to be run after any registered setup and
// before any registered teardown. Test cases must have unique descriptions
// within the context of a Fixture.
func (self *Fixture) Test(description string, action func()) {
	if self.frozen || !self.validate(description) {
		return
	}
	self.register(description, action)
}

// SkipTest registers a test case to be logged in test output but it
// will not be executed.
func (self *Fixture) SkipTest(description string, action func()) {
	if self.frozen || !self.validate(description) {
		return
	}
	self.skipped[description] = struct{}{}
	self.register(description, nil)
}

// FocusTest registers a test to be run instead of any other tests not
// registered with this function. Meant for debugging; replace with Test
// when done.
func (self *Fixture) FocusTest(description string, action func()) {
	if self.frozen || !self.validate(description) {
		return
	}
	self.focused[description] = struct{}{}
	self.register(description, action)
}

func (self *Fixture) register(description string, action func()) {
	self.names[description] = struct{}{}
	self.tests = append(self.tests, testCase{description: description, action: action})
}

func (self *Fixture) validate(description string) bool {
	if len(description) == 0 {
		self.spoiled = true
		self.Log("Test description must be non-blank.\n")
		return false
	}
	if _, found := self.names[description]; found {
		self.spoiled = true
		self.Logf(
			"Description conflict: action already registered with this description: '%s'\n",
			description)
		return false
	}
	return true
}

// Run iterates all test cases performing the following steps:
// - If registered, run the setup function.
// - Run the test case.
// - If registered, run the teardown function.
func (self *Fixture) Run() {
	defer self.dump()

	if self.spoiled && !self.frozen {
		self.t.Fail()
	} else if self.frozen || len(self.tests) == 0 {
		self.t.SkipNow() // calls runtime.Goexit(), killing the current goroutine
	} else {
		self.runAll()
	}
}

func (self *Fixture) dump() {
	self.t.Log(self.output.String())
}

func (self *Fixture) runAll() {
	self.frozen = true

	for _, test := range self.tests {
		self.runOne(test)
	}
}

func (self *Fixture) runOne(test testCase) {
	if len(self.focused) > 0 {
		if _, focus := self.focused[test.description]; focus {
			self.execute(" -> <FOCUSED> ", test)
		} else {
			self.Logf(" -> (skipped) \"%s\"\n", test.description)
		}
	} else if _, skip := self.skipped[test.description]; skip {
		self.Logf(" -> (skipped) \"%s\"\n", test.description)
	} else {
		self.execute(" -> ", test)
	}
}

func (self *Fixture) execute(prefix string, test testCase) {
	defer self.recover() // recovers panic in teardown
	defer self.teardown()
	defer self.recover() // recovers panic in setup or test
	self.setup()
	self.Logf("%s\"%s\"\n", prefix, test.description)
	test.action()
}

func (self *Fixture) recover() {
	if r := recover(); r != nil {
		self.t.Fail()
		self.Log(self.formatPanic(fmt.Sprint(r)))
	}
}

func (self *Fixture) formatPanic(recovered string) string {
	_, file, line, _ := runtime.Caller(4)
	fileInfo := file + ":" + strconv.Itoa(line)
	title := "PANIC: [" + recovered + "]"
	divider := strings.Repeat("*", max(len(fileInfo), len(title)))
	return "\n\n  " + divider + "\n\n  " +
		title + "\n\n  " +
		fileInfo + "\n\n  " +
		divider + "\n"
}

// This method stands in as a 'So' call with a required description--
// (a-la-`github.com/smartystreets/goconvey/convey/assertions.So`)
func (self *Fixture) So(description string, actual interface{}, so func(actual interface{}, expected ...interface{}) string, expected ...interface{}) {
	ok, result := assertions.So(actual, so, expected...)
	self.Log("    + ", description+"\n")
	if !ok {
		self.t.Fail()
		self.Log(self.formatResult(description, result))
	}
}

func (self *Fixture) SkipSo(description string, actual interface{}, so func(actual interface{}, expected ...interface{}) string, expected ...interface{}) {
	self.Log("    + (skipped) ", description+"\n")
}

// SoError asserts that err matches target by errors.Is. A nil target
// asserts that there was no error at all.
func (self *Fixture) SoError(description string, err, target error) {
	self.Log("    + ", description+"\n")
	if (target == nil && err == nil) || (target != nil && errors.Is(err, target)) {
		return
	}
	self.t.Fail()
	self.Log(self.formatResult(description,
		fmt.Sprintf("Expected error: '%v'\nActual:         '%v'", target, err)))
}

func (self *Fixture) formatResult(description, result string) string {
	_, file, line, _ := runtime.Caller(2)
	fileInfo := file + ":" + strconv.Itoa(line)
	title := "FAILED: \"" + description + "\""
	divider := strings.Repeat("*", max(len(fileInfo), len(title)))
	message := "\n    " + divider + "\n\n    " + title + "\n\n"
	for _, line := range strings.Split(result, "\n") {
		message += "    " + line + "\n"
	}
	return message + "\n\n    " + fileInfo + "\n\n    " + divider + "\n\n"
}

func (self *Fixture) Log(args ...interface{}) {
	self.output.WriteString(fmt.Sprint(args...))
}

func (self *Fixture) Logf(message string, args ...interface{}) {
	self.output.WriteString(fmt.Sprintf(message, args...))
}

//////////////////////////////////////////////////////////////////////////////

var (
	So             = assertions.So
	ShouldEqual    = assertions.ShouldEqual
	ShouldNotEqual = assertions.ShouldNotEqual
	ShouldResemble = assertions.ShouldResemble
	ShouldBeNil    = assertions.ShouldBeNil
	ShouldNotBeNil = assertions.ShouldNotBeNil
	ShouldBeTrue   = assertions.ShouldBeTrue
	ShouldBeFalse  = assertions.ShouldBeFalse

	ShouldBeGreaterThan = assertions.ShouldBeGreaterThan
	ShouldBeLessThan    = assertions.ShouldBeLessThan
	ShouldBeBetween     = assertions.ShouldBeBetween

	ShouldBeEmpty    = assertions.ShouldBeEmpty
	ShouldNotBeEmpty = assertions.ShouldNotBeEmpty

	ShouldStartWith        = assertions.ShouldStartWith
	ShouldEndWith          = assertions.ShouldEndWith
	ShouldContainSubstring = assertions.ShouldContainSubstring
)

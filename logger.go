package main

import "log"

type Logger interface {
	Debug(...interface{})
	Debugf(string, ...interface{})
	Info(...interface{})
	Infof(string, ...interface{})
	Error(...interface{})
	Errorf(string, ...interface{})
}

// logger should never "fatal", warnings are either
// info or error, warning is not actionable enough
type NoopLogger struct{}

func (nl NoopLogger) Debug(...interface{})          {}
func (nl NoopLogger) Debugf(string, ...interface{}) {}
func (nl NoopLogger) Info(...interface{})           {}
func (nl NoopLogger) Infof(string, ...interface{})  {}
func (nl NoopLogger) Error(...interface{})          {}
func (nl NoopLogger) Errorf(string, ...interface{}) {}

type StdLogger struct{}

func (sl StdLogger) Debug(args ...interface{}) { log.Println(append([]interface{}{"DEBUG"}, args...)...) }
func (sl StdLogger) Debugf(f string, args ...interface{}) { log.Printf("DEBUG "+f, args...) }
func (sl StdLogger) Info(args ...interface{})  { log.Println(append([]interface{}{"INFO"}, args...)...) }
func (sl StdLogger) Infof(f string, args ...interface{}) { log.Printf("INFO "+f, args...) }
func (sl StdLogger) Error(args ...interface{}) { log.Println(append([]interface{}{"ERROR"}, args...)...) }
func (sl StdLogger) Errorf(f string, args ...interface{}) { log.Printf("ERROR "+f, args...) }

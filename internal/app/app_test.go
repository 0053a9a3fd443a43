package app

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
	out bytes.Buffer
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
	s.out.Reset()
	s.app.out = &s.out

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	s.T().Setenv("DEBUG", "")
	s.T().Setenv("LOG_LVL", "")
	os.Unsetenv("DEBUG")
	os.Unsetenv("LOG_LVL")
}

func (s *ApplicationSuite) TestRun() {
	path := filepath.Join(s.T().TempDir(), "transactions.csv")
	input := "type,client,tx,amount\n" +
		"deposit,1,1,2.0\n" +
		"withdrawal,1,2,0.5\n"
	s.Require().NoError(os.WriteFile(path, []byte(input), 0o600))
	os.Args = []string{"cmd", path}

	err := s.app.Run(context.Background())

	s.Require().NoError(err)
	s.Equal("client,available,held,total,locked\n1,1.5,0.0,1.5,false\n", s.out.String())
}

func (s *ApplicationSuite) TestRunMissingFile() {
	os.Args = []string{"cmd", filepath.Join(s.T().TempDir(), "nope.csv")}

	err := s.app.Run(context.Background())

	s.Require().Error(err)
	s.Contains(err.Error(), "can't open transactions file")
}

func (s *ApplicationSuite) TestRunMissingPath() {
	os.Args = []string{"cmd"}

	err := s.app.Run(context.Background())

	s.Require().Error(err)
	s.Contains(err.Error(), "can't load config")
}

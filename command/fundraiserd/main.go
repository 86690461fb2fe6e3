// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2023 Ufundraisers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/ufundraisers/fundraiserd/counter"
	"github.com/ufundraisers/fundraiserd/fundraiser"
	"github.com/ufundraisers/fundraiserd/mode"
	"github.com/ufundraisers/fundraiserd/notifier"
	"github.com/ufundraisers/fundraiserd/rpc/certificate"
	"github.com/ufundraisers/fundraiserd/rpc/listeners"
	"github.com/ufundraisers/fundraiserd/rpc/server"
	"github.com/ufundraisers/fundraiserd/storage"
	"github.com/ufundraisers/fundraiserd/token"
	"github.com/ufundraisers/fundraiserd/util"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Chain)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	// general info
	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %q", theConfiguration.Database)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Notifier", theConfiguration.Notifier)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// start the token engine
	log.Info("initialise token")
	err = token.Initialise()
	if nil != err {
		log.Criticalf("token initialise error: %s", err)
		exitwithstatus.Message("token initialise error: %s", err)
	}
	defer token.Finalise()

	// start the campaign engine
	log.Info("initialise fundraiser")
	err = fundraiser.Initialise()
	if nil != err {
		log.Criticalf("fundraiser initialise error: %s", err)
		exitwithstatus.Message("fundraiser initialise error: %s", err)
	}
	defer fundraiser.Finalise()

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, theConfiguration) {
		return
	}

	// start up the event publishing background processes
	err = notifier.Initialise(&theConfiguration.Notifier)
	if nil != err {
		log.Criticalf("notifier initialise error: %s", err)
		exitwithstatus.Message("notifier initialise error: %s", err)
	}
	defer notifier.Finalise()

	// read the certificate and private key files
	if !util.EnsureFileExists(theConfiguration.ClientRPC.Certificate) {
		log.Criticalf("certificate: %q does not exist", theConfiguration.ClientRPC.Certificate)
		exitwithstatus.Message("certificate: %q does not exist", theConfiguration.ClientRPC.Certificate)
	}
	certificatePEM, err := ioutil.ReadFile(theConfiguration.ClientRPC.Certificate)
	if nil != err {
		log.Criticalf("certificate read error: %s", err)
		exitwithstatus.Message("certificate read error: %s", err)
	}

	if !util.EnsureFileExists(theConfiguration.ClientRPC.PrivateKey) {
		log.Criticalf("private key: %q does not exist", theConfiguration.ClientRPC.PrivateKey)
		exitwithstatus.Message("private key: %q does not exist", theConfiguration.ClientRPC.PrivateKey)
	}
	keyPEM, err := ioutil.ReadFile(theConfiguration.ClientRPC.PrivateKey)
	if nil != err {
		log.Criticalf("private key read error: %s", err)
		exitwithstatus.Message("private key read error: %s", err)
	}

	tlsConfiguration, fingerprint, err := certificate.Get(log, "client_rpc", string(certificatePEM), string(keyPEM))
	if nil != err {
		log.Criticalf("certificate error: %s", err)
		exitwithstatus.Message("certificate error: %s", err)
	}

	// start up the rpc listener
	var connectionCountRPC counter.Counter
	rpcServer := server.Create(logger.New("rpc"), version, &connectionCountRPC)

	rpcListener, err := listeners.NewRPC(
		&theConfiguration.ClientRPC,
		logger.New("client_rpc"),
		&connectionCountRPC,
		rpcServer,
		tlsConfiguration,
		fingerprint,
	)
	if nil != err {
		log.Criticalf("rpc create error: %s", err)
		exitwithstatus.Message("rpc create error: %s", err)
	}

	err = rpcListener.Serve()
	if nil != err {
		log.Criticalf("rpc serve error: %s", err)
		exitwithstatus.Message("rpc serve error: %s", err)
	}

	// ready to accept clients
	mode.Set(mode.Normal)

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	mode.Set(mode.Stopped)
}

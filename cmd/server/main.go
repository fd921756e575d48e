// Package main runs the detector gRPC server.
package main

import (
	"github.com/edaniels/golog"
	"go.viam.com/utils"

	"github.com/stolyarchuk/aa-video/server"
)

var logger = golog.NewDevelopmentLogger("aa_video_server")

func main() {
	utils.ContextualMain(server.RunServer, logger)
}

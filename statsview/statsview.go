// This file is part of GopherAVR.
//
// GopherAVR is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAVR is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAVR.  If not, see <https://www.gnu.org/licenses/>.

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// DefaultAddress is the address used when Launch() is called with an empty
// address.
const DefaultAddress = "localhost:12600"

const path = "/debug/statsview"

// URL returns the location of the statistics page for the server address.
func URL(addr string) string {
	if addr == "" {
		addr = DefaultAddress
	}
	return fmt.Sprintf("http://%s%s", addr, path)
}

// Server is a running statistics server.
type Server struct {
	mgr  *statsview.ViewManager
	addr string
}

// Launch a new goroutine running the statistics server. The location of the
// statistics page is written to output.
func Launch(output io.Writer, addr string) *Server {
	if addr == "" {
		addr = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))

	srv := &Server{
		mgr:  statsview.New(),
		addr: addr,
	}

	go func() {
		srv.mgr.Start()
	}()

	fmt.Fprintf(output, "stats server available at %s\n", URL(addr))

	return srv
}

// Stop the statistics server.
func (srv *Server) Stop() {
	srv.mgr.Stop()
}

func (srv *Server) String() string {
	return URL(srv.addr)
}

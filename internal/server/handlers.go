package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

// mazeQuery is the query string shared by every maze endpoint.
type mazeQuery struct {
	Rows    int    `form:"rows" binding:"omitempty,min=1"`
	Cols    int    `form:"cols" binding:"omitempty,min=1"`
	Seed    *int64 `form:"seed"`
	Solve   bool   `form:"solve"`
	Exit    string `form:"exit" binding:"omitempty,oneof=corner farthest"`
	DelayMS *int   `form:"delay_ms" binding:"omitempty,min=0,max=10000"`
}

// APIError is the body of every failed request.
type APIError struct {
	Message string `json:"message"`
}

var errTooLarge = errors.New("maze dimensions exceed the configured maximum")

// parseQuery binds the query and fills defaults from the configuration.
func (s *Server) parseQuery(c *gin.Context) (mazeQuery, error) {
	var q mazeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return q, err
	}
	if q.Rows == 0 {
		q.Rows = s.cfg.Rows
	}
	if q.Cols == 0 {
		q.Cols = s.cfg.Cols
	}
	if q.Rows > s.cfg.MaxDimension || q.Cols > s.cfg.MaxDimension {
		return q, fmt.Errorf("%w: %d×%d > %d", errTooLarge, q.Rows, q.Cols, s.cfg.MaxDimension)
	}
	if q.Seed == nil && s.cfg.Seed != 0 {
		seed := s.cfg.Seed
		q.Seed = &seed
	}
	return q, nil
}

// options turns the query into generator options.
func (q mazeQuery) options(ctx context.Context) []maze.Option {
	opts := []maze.Option{maze.WithContext(ctx)}
	if q.Seed != nil {
		opts = append(opts, maze.WithSeed(*q.Seed))
	}
	return opts
}

// generated is a finished maze plus its optional solution overlay.
type generated struct {
	grid   *grid.Grid
	result *maze.Result
	render []render.Option
}

// build parses the query and carves the maze, writing an error response on failure.
func (s *Server) build(c *gin.Context) (*generated, bool) {
	q, err := s.parseQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, APIError{Message: err.Error()})
		return nil, false
	}
	opts := append(q.options(c.Request.Context()), maze.WithLogger(s.logger))
	g, res, err := maze.Generate(q.Rows, q.Cols, opts...)
	if err != nil {
		s.logger.Error().Err(err).Int("rows", q.Rows).Int("cols", q.Cols).Msg("maze generation failed")
		c.JSON(http.StatusInternalServerError, APIError{Message: err.Error()})
		return nil, false
	}

	out := &generated{grid: g, result: res}
	if q.Solve {
		exit, err := maze.Exit(g, q.Exit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, APIError{Message: err.Error()})
			return nil, false
		}
		path, err := maze.Solve(g, grid.Coord{}, exit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, APIError{Message: err.Error()})
			return nil, false
		}
		out.render = append(out.render, render.WithPath(path))
	}
	c.Header(headerSeed, strconv.FormatInt(res.Seed, 10))
	return out, true
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) getJSON(c *gin.Context) {
	m, ok := s.build(c)
	if !ok {
		return
	}
	doc, err := render.NewDocument(m.grid, m.result.Seed, m.render...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, APIError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (s *Server) getASCII(c *gin.Context) {
	m, ok := s.build(c)
	if !ok {
		return
	}
	out, err := render.ASCII(m.grid, m.render...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, APIError{Message: err.Error()})
		return
	}
	c.String(http.StatusOK, out)
}

func (s *Server) getPNG(c *gin.Context) {
	m, ok := s.build(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := render.WritePNG(&buf, m.grid, m.render...); err != nil {
		c.JSON(http.StatusInternalServerError, APIError{Message: err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

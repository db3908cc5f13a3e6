package server

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexiusacademia/gocable/internal/bs7671"
	"github.com/alexiusacademia/gocable/internal/circuit"
	"github.com/alexiusacademia/gocable/internal/metrics"
	"github.com/alexiusacademia/gocable/internal/report"
)

// CalculateRequest is the body of the calculate and export endpoints.
type CalculateRequest struct {
	Load         circuit.LoadSpecification   `json:"load"`
	Installation circuit.InstallationContext `json:"installation"`
	Options      RequestOptions              `json:"options"`
}

// RequestOptions adjusts the calculator for one request.
type RequestOptions struct {
	CurrentBasis           circuit.CurrentBasis `json:"currentBasis,omitempty"`
	ApplyAmbientCorrection bool                 `json:"applyAmbientCorrection,omitempty"`
	// CableType sizes from the cable database by reference method.
	CableType string `json:"cableType,omitempty"`
}

// ErrorResponse is returned for rejected requests.
type ErrorResponse struct {
	Error     string `json:"error"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func (s *Server) handleCalculate(c *gin.Context) {
	_, result, ok := s.calculate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleExport(c *gin.Context) {
	format, err := report.ParseFormat(c.DefaultQuery("format", string(report.FormatJSON)))
	if err != nil {
		s.reject(c, http.StatusBadRequest, metrics.ReasonBadRequest, err, "format")
		return
	}

	req, result, ok := s.calculate(c)
	if !ok {
		return
	}

	export := report.NewExport(req.Load, req.Installation, result, s.now())
	data, err := report.Render(format, export)
	if err != nil {
		s.metrics.ObserveExport(string(format), metrics.ResultError)
		s.logger.Error("Export failed", slog.String("format", string(format)), slog.String("error", err.Error()))
		s.reject(c, http.StatusInternalServerError, metrics.ReasonRender, err, "")
		return
	}
	s.metrics.ObserveExport(string(format), metrics.ResultSuccess)

	c.Header("Content-Disposition", `attachment; filename="`+format.Filename(export)+`"`)
	c.Data(http.StatusOK, format.ContentType(), data)
}

// calculate binds the request and runs the calculator. The returned request
// holds the normalized inputs. On failure it has already written the error
// response.
func (s *Server) calculate(c *gin.Context) (*CalculateRequest, *circuit.CalculationResult, bool) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.reject(c, http.StatusBadRequest, metrics.ReasonBadRequest, err, "")
		return nil, nil, false
	}

	calc, err := s.calculatorFor(req.Options)
	if err != nil {
		s.reject(c, http.StatusBadRequest, metrics.ReasonBadRequest, err, "options")
		return nil, nil, false
	}

	start := time.Now()
	result, err := calc.Calculate(req.Load, req.Installation)
	if err != nil {
		var inputErr *circuit.InvalidInputError
		if errors.As(err, &inputErr) {
			s.reject(c, http.StatusBadRequest, metrics.ReasonInvalidInput, err, inputErr.Field)
		} else {
			s.reject(c, http.StatusUnprocessableEntity, metrics.ReasonTable, err, "installation.installationMethod")
		}
		return nil, nil, false
	}
	s.metrics.ObserveCalculation(result, time.Since(start))

	// Record the inputs the calculation actually used.
	req.Load, req.Installation, _ = calc.Normalize(req.Load, req.Installation)
	return &req, result, true
}

func (s *Server) calculatorFor(opts RequestOptions) (*circuit.Calculator, error) {
	calc := *s.calc
	if opts.CurrentBasis != "" {
		if !opts.CurrentBasis.Valid() {
			return nil, errors.New("currentBasis must be real-power or apparent-power")
		}
		calc.Basis = opts.CurrentBasis
	}
	if opts.ApplyAmbientCorrection {
		calc.Options.ApplyAmbientCorrection = true
	}
	if opts.CableType != "" {
		return calc.WithReferenceMethodTable(opts.CableType)
	}
	return &calc, nil
}

func (s *Server) reject(c *gin.Context, status int, reason string, err error, field string) {
	s.metrics.IncError(reason)
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     err.Error(),
		Field:     field,
		RequestID: c.GetString("requestID"),
	})
}

func (s *Server) handleTemplates(c *gin.Context) {
	templates := s.calc.Templates
	if templates == nil {
		templates = bs7671.DefaultTemplates()
	}
	c.JSON(http.StatusOK, gin.H{
		"templates": templates,
		"fallback":  bs7671.FallbackTemplate,
	})
}

// handleCables returns the simplified table by default. With ?type= it
// returns the cable type and its prices, adding &method= for one reference
// method's table. ?method= alone lists the cable types rated for the method,
// narrowed by &current= to those with a size rated for that current.
func (s *Server) handleCables(c *gin.Context) {
	cableType := c.Query("type")
	method := bs7671.ReferenceMethod(strings.ToUpper(c.Query("method")))

	switch {
	case cableType == "" && method == "":
		table := s.calc.Table
		if len(table) == 0 {
			table = bs7671.DefaultCableTable()
		}
		c.JSON(http.StatusOK, gin.H{"types": bs7671.CableTypeKeys(), "table": table})

	case cableType == "":
		if raw := c.Query("current"); raw != "" {
			current, err := strconv.ParseFloat(raw, 64)
			if err != nil || !(current > 0) {
				s.queryError(c, http.StatusBadRequest, "current must be a positive number")
				return
			}
			c.JSON(http.StatusOK, gin.H{"method": method, "current": current, "types": nonNil(bs7671.CableTypesForCurrent(current, method))})
			return
		}
		c.JSON(http.StatusOK, gin.H{"method": method, "types": nonNil(bs7671.CableTypesForMethod(method))})

	case method == "":
		ct, ok := bs7671.CableDatabase[cableType]
		if !ok {
			s.queryError(c, http.StatusNotFound, "unknown cable type "+strconv.Quote(cableType))
			return
		}
		c.JSON(http.StatusOK, gin.H{"cableType": ct, "prices": ct.Prices()})

	default:
		table, err := bs7671.CableTable(cableType, method)
		if err != nil {
			s.queryError(c, http.StatusNotFound, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"type": cableType, "method": method, "table": table})
	}
}

// handleAlternatives lists cheaper cable types in the same size:
// ?type=&size=[&budget=].
func (s *Server) handleAlternatives(c *gin.Context) {
	size, err := strconv.ParseFloat(c.Query("size"), 64)
	if err != nil || !(size > 0) {
		s.queryError(c, http.StatusBadRequest, "size must be a positive number")
		return
	}
	budget := math.Inf(1)
	if raw := c.Query("budget"); raw != "" {
		budget, err = strconv.ParseFloat(raw, 64)
		if err != nil || !(budget > 0) {
			s.queryError(c, http.StatusBadRequest, "budget must be a positive number")
			return
		}
	}

	alternatives, err := bs7671.CostEffectiveAlternatives(c.Query("type"), size, budget)
	if err != nil {
		s.queryError(c, http.StatusNotFound, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"type": c.Query("type"), "size": size, "alternatives": alternatives})
}

// queryError answers a reference data query that cannot be served.
func (s *Server) queryError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Error: msg, RequestID: c.GetString("requestID")})
}

func nonNil(keys []string) []string {
	if keys == nil {
		return []string{}
	}
	return keys
}

func (s *Server) handleMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"methods": bs7671.InstallationMethods})
}

package emailsyntax

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/optimode/emailsyntax/check"
	"github.com/optimode/emailsyntax/internal/parse"
	"github.com/optimode/emailsyntax/types"
)

// checker is the internal interface for all validation levels.
// Every check/ package type implements this.
type checker interface {
	Check(ctx context.Context, email parse.Email) types.CheckResult
}

// Validator is the main fluent builder struct.
// Instantiate with the New() function. A configured Validator is safe for
// concurrent use.
type Validator struct {
	checkers []checker
	err      error // configuration error, returned on Validate()
	logger   *zap.Logger
}

// New creates a new Validator. By default it only performs syntax checking.
// Syntax checking always runs and cannot be disabled, because a well-formed
// address is a prerequisite for the other levels.
func New() *Validator {
	return &Validator{
		checkers: []checker{
			check.NewSyntaxChecker(),
		},
		logger: zap.NewNop(),
	}
}

// WithDomain adds the domain-level typo suggestion to the pipeline.
// Optionally overrides the default DomainOptions.
func (v *Validator) WithDomain(opts ...DomainOptions) *Validator {
	o := defaultDomainOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.TypoThreshold < 0 {
		v.err = ErrInvalidDomainOptions
		return v
	}
	v.checkers = append(v.checkers, check.NewDomainChecker(check.DomainConfig{
		CheckTypos:     o.CheckTypos,
		TypoThreshold:  o.TypoThreshold,
		KnownProviders: o.KnownProviders,
	}))
	return v
}

// WithLogger sets the logger used to report failed checks at debug level.
// A nil logger disables logging.
func (v *Validator) WithLogger(logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	v.logger = logger
	return v
}

// Validate runs all configured checks on the given email.
// The pipeline short-circuits: if a level fails, subsequent levels are skipped.
// A syntax failure is reported in the Result, not as an error; the error
// return is reserved for configuration problems.
func (v *Validator) Validate(ctx context.Context, email string) (Result, error) {
	if err := v.configErr(); err != nil {
		return Result{}, err
	}

	parsed := parse.NewEmail(email)
	result := Result{Email: email}

	for _, c := range v.checkers {
		cr := c.Check(ctx, parsed)
		result.Checks = append(result.Checks, cr)

		if !cr.Passed {
			v.logFailure(email, cr)
			result.Valid = false
			return result, nil // short-circuit
		}
	}

	result.Valid = true
	return result, nil
}

// ValidateAll runs all checks without short-circuiting.
// Useful when you want to know exactly which levels fail.
func (v *Validator) ValidateAll(ctx context.Context, email string) (Result, error) {
	if err := v.configErr(); err != nil {
		return Result{}, err
	}

	parsed := parse.NewEmail(email)
	result := Result{Email: email, Valid: true}

	for _, c := range v.checkers {
		cr := c.Check(ctx, parsed)
		result.Checks = append(result.Checks, cr)
		if !cr.Passed {
			v.logFailure(email, cr)
			result.Valid = false
			// don't stop, continue
		}
	}

	return result, nil
}

// ValidateMany validates multiple emails concurrently.
// The result order matches the input slice order. If ctx is cancelled,
// the remaining emails are not validated and ctx's error is returned
// along with the results gathered so far.
func (v *Validator) ValidateMany(ctx context.Context, emails []string, opts ...ConcurrencyOptions) ([]Result, error) {
	if err := v.configErr(); err != nil {
		return nil, err
	}

	o := defaultConcurrencyOptions()
	if len(opts) > 0 {
		o.All = opts[0].All
		if opts[0].Workers > 0 {
			o.Workers = opts[0].Workers
		}
	}
	validate := v.Validate
	if o.All {
		validate = v.ValidateAll
	}

	results := make([]Result, len(emails))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)

	for i, email := range emails {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := validate(gctx, email)
			if err != nil {
				return fmt.Errorf("validating %q: %w", email, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	// errgroup only reports errors returned by its goroutines; a parent
	// cancelled before any were started surfaces here.
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

func (v *Validator) configErr() error {
	if v.err != nil {
		return v.err
	}
	if len(v.checkers) == 0 {
		return ErrNoChecksConfigured
	}
	return nil
}

func (v *Validator) logFailure(email string, cr CheckResult) {
	if v.logger == nil {
		return
	}
	v.logger.Debug("email check failed",
		zap.String("email", email),
		zap.String("level", cr.Level),
		zap.String("details", cr.Details),
	)
}

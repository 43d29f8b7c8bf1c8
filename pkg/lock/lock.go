package lock

import (
	"fmt"
	"net"
	"syscall"

	"github.com/rs/zerolog"

	portlockErrors "github.com/lbussy/portlock/pkg/errors"
)

// InstanceLock prevents concurrent instances of an application by holding an
// exclusive binding on a loopback UDP port. The open binding is the lock: the
// kernel guarantees at most one process machine-wide can bind a given
// (address, port) pair, and closes the socket when the owning process exits,
// so abnormal termination never leaves a stale lock behind.
type InstanceLock struct {
	port     uint16
	conn     net.PacketConn
	acquired bool
	logger   zerolog.Logger
}

// Option configures an InstanceLock.
type Option func(*InstanceLock)

// WithLogger attaches a logger for debug-level diagnostics. The default is
// zerolog.Nop(); the lock never logs above debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *InstanceLock) {
		l.logger = logger
	}
}

// New creates an InstanceLock for the given port. It performs no I/O and
// never fails; the binding is attempted by Acquire. Ports above 1024 avoid
// needing elevated privileges.
func New(port uint16, opts ...Option) *InstanceLock {
	l := &InstanceLock{
		port:     port,
		acquired: false,
		logger:   zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Acquire tries to acquire the lock by binding a datagram socket to the
// loopback address on the configured port. It is idempotent on success:
// once bound, further calls return nil without touching the socket. While
// unbound, every call re-attempts the bind, since the process holding the
// port may have exited in the meantime.
//
// Contention is reported as a *errors.LockError wrapping ErrAlreadyRunning;
// any other socket failure is a *errors.LockError wrapping the OS error.
func (l *InstanceLock) Acquire() error {
	if l.acquired {
		return nil
	}

	conn, err := net.ListenPacket("udp4", l.String())
	if err != nil {
		if portlockErrors.Is(err, syscall.EADDRINUSE) {
			return portlockErrors.NewLockError(l.port, portlockErrors.ErrAlreadyRunning)
		}
		return portlockErrors.NewLockError(l.port,
			portlockErrors.Wrap(err, "could not bind loopback port"))
	}

	l.conn = conn
	l.acquired = true
	l.logger.Debug().Uint16("port", l.port).Msg("instance lock acquired")

	return nil
}

// Release closes the held binding and returns the lock to the unbound state.
// It is safe to call on a lock that was never acquired or has already been
// released, and it never fails: a close error is logged at debug level and
// otherwise dropped, since the OS reclaims the socket on process exit anyway.
func (l *InstanceLock) Release() {
	if l.conn == nil {
		return
	}

	if err := l.conn.Close(); err != nil {
		l.logger.Debug().Err(err).Uint16("port", l.port).Msg("error closing instance lock socket")
	}

	l.conn = nil
	l.acquired = false
	l.logger.Debug().Uint16("port", l.port).Msg("instance lock released")
}

// IsAcquired reports whether this lock currently holds the binding.
func (l *InstanceLock) IsAcquired() bool {
	return l.acquired
}

// Port returns the port number backing the lock.
func (l *InstanceLock) Port() uint16 {
	return l.port
}

// String returns the loopback address the lock binds, for logging.
func (l *InstanceLock) String() string {
	return fmt.Sprintf("127.0.0.1:%d", l.port)
}

package service

import "go.uber.org/zap"

func (use *SessionServiceImplement) taskWorker(i int) {
	defer use.wg.Done()
	for {
		select {
		case task := <-use.TaskQueue:
			use.logger.Debug("New task has been received. Execute...", zap.Int("worker", i))
			task()
		case <-use.closechan:
			use.drain(i)
			return
		}
	}
}

// drain runs the tasks still queued at shutdown.
func (use *SessionServiceImplement) drain(i int) {
	for {
		select {
		case task := <-use.TaskQueue:
			task()
		default:
			use.logger.Debug("Task queue is empty, stopping worker", zap.Int("worker", i))
			return
		}
	}
}

func (use *SessionServiceImplement) StopWorkers() {
	close(use.closechan)
	use.wg.Wait()
	use.logger.Debug("Successful stop task-workers")
}

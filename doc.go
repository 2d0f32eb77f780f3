/*
Package kitaev prepares and measures fermionic Gaussian states of the Kitaev
chain, a one-dimensional topological superconductor hosting edge Majorana
modes.

The pipeline runs parameters → Hamiltonian matrices → Bogoliubov
transformation → state-preparation circuit → measurement circuits → backend
job → bitstring counts → expectation values:

	task := kitaev.KitaevHamiltonianTask{
		ExperimentID:     "mzm-sweep",
		NModes:           4,
		Tunneling:        1.0,
		Superconducting:  1.0,
		ChemicalPotential: 0.5,
		OccupiedOrbitals: []int{},
		Shots:            []int{4096},
	}
	backend := kitaev.NewStatevectorBackend("sim", 8, kitaev.NewConfig())
	job, err := kitaev.RunTask(backend, task)
	...
	counts, err := job.Result(ctx)
	edge, err := kitaev.ComputeMeasureEdgeCorrelation(counts[2])

Symbolic fermionic operators (Majorana modes, parity, particle number, the
edge correlator) are available for analytic cross-checks against the sampled
estimates.
*/
package kitaev
